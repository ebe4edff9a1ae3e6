// Package content holds the copy rendered on the page: hero, identity cards,
// projects, skills, philosophy and contact links.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ikansh/ikansh-dev/internal/persona"
)

var ErrInvalid = errors.New("invalid content")

type Profile struct {
	Name     string   `yaml:"name"`
	Initials string   `yaml:"initials"`
	Tagline  string   `yaml:"tagline"`
	Intro    string   `yaml:"intro"`
	Phrases  []string `yaml:"phrases"`
	Finale   string   `yaml:"finale"`

	Identity   Identity    `yaml:"identity"`
	Projects   []Project   `yaml:"projects"`
	Skills     []SkillSet  `yaml:"skills"`
	Philosophy []string    `yaml:"philosophy"`
	Quote      Quote       `yaml:"quote"`
	Contact    ContactCopy `yaml:"contact"`
	Links      Links       `yaml:"links"`
	Footer     Footer      `yaml:"footer"`
}

// Identity is the "duality" section: one card per persona.
type Identity struct {
	Heading string `yaml:"heading"`
	Ika     Card   `yaml:"ika"`
	Genesis Card   `yaml:"genesis"`
}

type Card struct {
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Body       string   `yaml:"body"`
	Drives     []string `yaml:"drives"`
	FocusTitle string   `yaml:"focus_title"`
	Focus      []string `yaml:"focus"`
}

type Project struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Tags        []string        `yaml:"tags"`
	Persona     persona.Persona `yaml:"persona"`
	Link        string          `yaml:"link"`
}

type SkillSet struct {
	Title string   `yaml:"title"`
	Icon  string   `yaml:"icon"`
	Items []string `yaml:"items"`
}

type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

type ContactCopy struct {
	Heading string `yaml:"heading"`
	Prompt  string `yaml:"prompt"`
}

type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
	Tagline   string `yaml:"tagline"`
}

// Card returns the identity card for p.
func (p *Profile) Card(who persona.Persona) Card {
	if who == persona.Genesis {
		return p.Identity.Genesis
	}
	return p.Identity.Ika
}

// ProjectsFor returns the gallery narrowed by f, in page order.
func (p *Profile) ProjectsFor(f persona.Filter) []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		if f.Match(pr.Persona) {
			out = append(out, pr)
		}
	}
	return out
}

// MailTo is the mail-to href of the contact email, empty if none is set.
func (p *Profile) MailTo() string {
	if p.Links.Email == "" {
		return ""
	}
	return "mailto:" + p.Links.Email
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(p.Phrases) == 0 {
		return fmt.Errorf("%w: at least one phrase is required", ErrInvalid)
	}
	for i, ph := range p.Phrases {
		if ph == "" {
			return fmt.Errorf("%w: phrase %d is empty", ErrInvalid, i)
		}
	}
	for _, pr := range p.Projects {
		if !pr.Persona.Valid() {
			return fmt.Errorf("%w: project %q has persona %q", ErrInvalid, pr.Title, pr.Persona)
		}
	}
	return nil
}

// Load reads a YAML file and lays its non-empty fields over Default().
// An empty path returns the defaults.
func Load(path string) (*Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	var o Profile
	if err := yaml.Unmarshal(b, &o); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	p.merge(&o)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) merge(o *Profile) {
	str := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	list := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}

	str(&p.Name, o.Name)
	str(&p.Initials, o.Initials)
	str(&p.Tagline, o.Tagline)
	str(&p.Intro, o.Intro)
	list(&p.Phrases, o.Phrases)
	str(&p.Finale, o.Finale)

	str(&p.Identity.Heading, o.Identity.Heading)
	mergeCard(&p.Identity.Ika, o.Identity.Ika)
	mergeCard(&p.Identity.Genesis, o.Identity.Genesis)

	if len(o.Projects) > 0 {
		p.Projects = o.Projects
	}
	if len(o.Skills) > 0 {
		p.Skills = o.Skills
	}
	list(&p.Philosophy, o.Philosophy)
	str(&p.Quote.Text, o.Quote.Text)
	str(&p.Quote.Author, o.Quote.Author)
	str(&p.Contact.Heading, o.Contact.Heading)
	str(&p.Contact.Prompt, o.Contact.Prompt)
	str(&p.Links.GitHub, o.Links.GitHub)
	str(&p.Links.LinkedIn, o.Links.LinkedIn)
	str(&p.Links.Email, o.Links.Email)
	str(&p.Footer.Copyright, o.Footer.Copyright)
	str(&p.Footer.Tagline, o.Footer.Tagline)
}

func mergeCard(dst *Card, src Card) {
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Subtitle != "" {
		dst.Subtitle = src.Subtitle
	}
	if src.Body != "" {
		dst.Body = src.Body
	}
	if len(src.Drives) > 0 {
		dst.Drives = src.Drives
	}
	if src.FocusTitle != "" {
		dst.FocusTitle = src.FocusTitle
	}
	if len(src.Focus) > 0 {
		dst.Focus = src.Focus
	}
}
