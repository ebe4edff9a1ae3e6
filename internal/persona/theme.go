package persona

import "github.com/charmbracelet/lipgloss"

// Theme bundles the CSS classes used by the web page and the colours used by
// the terminal view for one persona.
type Theme struct {
	Accent       string
	AccentBg     string
	AccentHover  string
	AccentBorder string
	Gradient     string
	GradientBg   string
	CardBorder   string
	CardBg       string

	// Hex is the accent colour, also used for the rain.
	Hex string

	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

var themes = map[Persona]Theme{
	Ika: {
		Accent:       "text-cyan-400",
		AccentBg:     "bg-cyan-600",
		AccentHover:  "hover:bg-cyan-500",
		AccentBorder: "border-cyan-500",
		Gradient:     "from-cyan-400 to-blue-400",
		GradientBg:   "from-cyan-600 to-blue-600",
		CardBorder:   "border-cyan-800",
		CardBg:       "from-cyan-950/50 to-slate-900",
		Hex:          "#06b6d4",
		Primary:      lipgloss.Color("#22d3ee"), // cyan-400
		Secondary:    lipgloss.Color("#60a5fa"), // blue-400
	},
	Genesis: {
		Accent:       "text-violet-400",
		AccentBg:     "bg-violet-600",
		AccentHover:  "hover:bg-violet-500",
		AccentBorder: "border-violet-500",
		Gradient:     "from-violet-400 to-purple-400",
		GradientBg:   "from-violet-600 to-purple-600",
		CardBorder:   "border-violet-800",
		CardBg:       "from-violet-950/50 to-slate-900",
		Hex:          "#8b5cf6",
		Primary:      lipgloss.Color("#a78bfa"), // violet-400
		Secondary:    lipgloss.Color("#c084fc"), // purple-400
	},
}

// ThemeFor returns the bundle for p; unknown personas get the default one.
func ThemeFor(p Persona) Theme {
	if t, ok := themes[p]; ok {
		return t
	}
	return themes[Default]
}
