// Package persona holds the two visual/content modes of the site and the
// style bundle each one selects.
package persona

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPersona = errors.New("unknown persona")

type Persona string

const (
	Ika     Persona = "ika"
	Genesis Persona = "genesis"

	Default = Ika
)

// All lists the personas in display order.
var All = []Persona{Ika, Genesis}

// Parse accepts the persona value or its display label, case-insensitively.
func Parse(s string) (Persona, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ika", "ikabrain":
		return Ika, nil
	case "genesis", "thegenesis":
		return Genesis, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPersona, s)
}

// ParseOr is Parse with a fallback for empty or unknown input.
func ParseOr(s string, fallback Persona) Persona {
	p, err := Parse(s)
	if err != nil {
		return fallback
	}
	return p
}

func (p Persona) Valid() bool { return p == Ika || p == Genesis }

// Label is the persona's name on the page.
func (p Persona) Label() string {
	if p == Genesis {
		return "TheGenesis"
	}
	return "IkaBrain"
}

// Short is the name on the theme toggle.
func (p Persona) Short() string {
	if p == Genesis {
		return "Genesis"
	}
	return "Ika"
}

func (p Persona) Other() Persona {
	if p == Genesis {
		return Ika
	}
	return Genesis
}

func (p Persona) Theme() Theme { return ThemeFor(p) }

func (p Persona) String() string { return string(p) }

// Selector is the page-level persona toggle.
type Selector struct {
	current Persona
}

func NewSelector(p Persona) *Selector {
	if !p.Valid() {
		p = Default
	}
	return &Selector{current: p}
}

func (s *Selector) Current() Persona { return s.current }

// Set switches to p and reports whether anything changed. Setting the current
// value, or an invalid one, changes nothing.
func (s *Selector) Set(p Persona) bool {
	if !p.Valid() || p == s.current {
		return false
	}
	s.current = p
	return true
}

// Toggle switches to the other persona and returns it.
func (s *Selector) Toggle() Persona {
	s.current = s.current.Other()
	return s.current
}

// Filter narrows the project gallery.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIka     Filter = Filter(Ika)
	FilterGenesis Filter = Filter(Genesis)
)

var Filters = []Filter{FilterAll, FilterIka, FilterGenesis}

// ParseFilter maps anything unrecognised to FilterAll.
func ParseFilter(s string) Filter {
	if s = strings.ToLower(strings.TrimSpace(s)); s == "" || s == string(FilterAll) {
		return FilterAll
	}
	p, err := Parse(s)
	if err != nil {
		return FilterAll
	}
	return Filter(p)
}

func (f Filter) Match(p Persona) bool {
	return f == FilterAll || Persona(f) == p
}

func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	return Persona(f).Label()
}
