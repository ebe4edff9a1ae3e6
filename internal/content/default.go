package content

import "github.com/ikansh/ikansh-dev/internal/persona"

var (
	ikaBody = `The playful architect of experiments and wild ideas. IkaBrain thrives in the realm of "what if?",
	building neural networks for fun, simulating quantum states, and turning abstract concepts into
	interactive experiences. This is where creativity meets code, where learning happens through play,
	and where the impossible becomes merely improbable.`

	genesisBody = `The shadow that drives ambition and self-transcendence. TheGenesis operates in the depths of
	systematic inquiry, reality mining, and the pursuit of fundamental understanding. This is the force
	that refuses to accept surface-level answers, that pushes beyond comfort zones, and that transforms
	curiosity into relentless investigation.`

	philosophyOne = `Reality is a puzzle with infinite pieces, and I am both the solver and the piece. My work exists at the
	intersection of consciousness and computation, where the playful curiosity of IkaBrain meets the
	relentless drive of TheGenesis. Together, they form a complete investigative apparatus: one that
	builds, questions, and transcends.`

	philosophyTwo = `Through systematic inquiry and experimental play, I seek to understand the patterns that govern complex
	systems, whether they exist in neural networks, quantum states, or the depths of human consciousness.
	Every project is both a technical challenge and a philosophical exploration.`
)

// Default is the copy of ikansh.dev.
func Default() *Profile {
	return &Profile{
		Name:     "Ikansh Mahajan",
		Initials: "IM",
		Tagline:  "Machine Intelligence. Scientific Inquiry. Relentless Curiosity.",
		Intro: `A mind split between playful exploration and relentless ambition. Building at the intersection of
	consciousness and computation, where curiosity meets the shadows of deeper understanding.`,
		Phrases: []string{"Seeker", "Builder", "Shadow-Bound", "Free Thinker"},
		Finale:  "IKANSH",

		Identity: Identity{
			Heading: "The Duality Within",
			Ika: Card{
				Title:      "IkaBrain",
				Subtitle:   "The Curious Explorer",
				Body:       ikaBody,
				Drives:     []string{"Experimental learning", "Creative problem-solving", "Interdisciplinary exploration", "Joyful discovery"},
				FocusTitle: "Projects",
				Focus:      []string{"Neural playgrounds", "Quantum simulations", "Creative coding", "Interactive visualizations"},
			},
			Genesis: Card{
				Title:      "TheGenesis",
				Subtitle:   "The Relentless Force",
				Body:       genesisBody,
				Drives:     []string{"Deep understanding", "Systematic investigation", "Pattern recognition", "Self-transcendence"},
				FocusTitle: "Focus Areas",
				Focus:      []string{"Reality mining", "Consciousness mapping", "Complex systems", "Optimization frameworks"},
			},
		},

		Projects: []Project{
			{
				Title:       "Neural Network Playground",
				Description: "Interactive visualization of deep learning concepts with real-time parameter tuning.",
				Tags:        []string{"Python", "TensorFlow", "React"},
				Persona:     persona.Ika,
				Link:        "#",
			},
			{
				Title:       "Quantum State Simulator",
				Description: "Exploring quantum mechanics through computational models and probability distributions.",
				Tags:        []string{"Python", "NumPy", "Quantum"},
				Persona:     persona.Ika,
				Link:        "#",
			},
			{
				Title:       "Reality Mining Framework",
				Description: "Advanced data analysis pipeline for extracting patterns from complex systems.",
				Tags:        []string{"Python", "Pandas", "ML"},
				Persona:     persona.Genesis,
				Link:        "#",
			},
			{
				Title:       "Consciousness Mapping Tool",
				Description: "Systematic approach to understanding cognitive patterns and decision-making processes.",
				Tags:        []string{"Psychology", "Data Science", "Visualization"},
				Persona:     persona.Genesis,
				Link:        "#",
			},
			{
				Title:       "Satellite Trajectory Optimizer",
				Description: "Orbital mechanics simulation with machine learning-enhanced path planning.",
				Tags:        []string{"C++", "Orbital Mechanics", "Optimization"},
				Persona:     persona.Genesis,
				Link:        "#",
			},
			{
				Title:       "Creative Code Experiments",
				Description: "Collection of generative art and algorithmic creativity explorations.",
				Tags:        []string{"Processing", "Creative Coding", "Art"},
				Persona:     persona.Ika,
				Link:        "#",
			},
		},

		Skills: []SkillSet{
			{Title: "Programming", Icon: "code", Items: []string{"Python", "C/C++", "JavaScript", "SQL", "R"}},
			{Title: "Tools", Icon: "database", Items: []string{"Git", "VS Code", "Jupyter", "Docker", "Linux"}},
			{Title: "Frameworks", Icon: "cpu", Items: []string{"TensorFlow", "Pandas", "React", "NumPy", "Matplotlib"}},
			{Title: "Meta Skills", Icon: "brain", Items: []string{"System Design", "Research Methodology", "Technical Writing", "Problem Solving"}},
		},

		Philosophy: []string{philosophyOne, philosophyTwo},
		Quote: Quote{
			Text:   "Until you make the unconscious conscious, it will direct your life and you will call it fate.",
			Author: "Carl Jung",
		},

		Contact: ContactCopy{
			Heading: "Connect & Collaborate",
			Prompt:  "Collaborator? Curious mind? Fellow seeker? Reach out.",
		},
		Links: Links{
			GitHub:   "https://github.com/ikansh",
			LinkedIn: "https://www.linkedin.com/in/ikansh",
			Email:    "hello@ikansh.dev",
		},
		Footer: Footer{
			Copyright: "© 2024 Ikansh Mahajan",
			Tagline:   "Built by IkaBrain. Forged by TheGenesis.",
		},
	}
}
