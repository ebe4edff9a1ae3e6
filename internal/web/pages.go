package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ikansh/ikansh-dev/internal/contact"
	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/persona"
)

const (
	personaCookie = "persona"
	personaKey    = "persona"
)

type section struct {
	ID, Title string
}

var sections = []section{
	{"hero", "Home"},
	{"identity", "Identity"},
	{"projects", "Projects"},
	{"skills", "Skills"},
	{"philosophy", "Philosophy"},
	{"contact", "Contact"},
}

type contactForm struct {
	Name, Email, Message string
	Errors               map[string]string
	Error                string
}

type pageData struct {
	Profile  *content.Profile
	Persona  persona.Persona
	Theme    persona.Theme
	Personas []persona.Persona
	Sections []section

	Tab      persona.Persona
	TabTheme persona.Theme
	Card     content.Card

	Filter   persona.Filter
	Filters  []persona.Filter
	Projects []content.Project

	Form     contactForm
	Success  string
	RainCell int
}

// currentPersona reads ?persona= then the cookie, falling back to the default.
func (s *Server) currentPersona(c *gin.Context) persona.Persona {
	if q := c.Query("persona"); q != "" {
		if p, err := persona.Parse(q); err == nil {
			return p
		}
	}
	if v, err := c.Cookie(personaCookie); err == nil {
		return persona.ParseOr(v, persona.Default)
	}
	return persona.Default
}

func (s *Server) page(c *gin.Context) pageData {
	p := s.currentPersona(c)
	c.Set(personaKey, string(p))

	tab := persona.ParseOr(c.Query("tab"), p)
	filter := persona.ParseFilter(c.Query("filter"))
	return pageData{
		Profile:  s.Profile,
		Persona:  p,
		Theme:    p.Theme(),
		Personas: persona.All,
		Sections: sections,
		Tab:      tab,
		TabTheme: tab.Theme(),
		Card:     s.Profile.Card(tab),
		Filter:   filter,
		Filters:  persona.Filters,
		Projects: s.Profile.ProjectsFor(filter),
		RainCell: s.Rain.CellSize,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	data := s.page(c)
	s.Metrics.PageViews.WithLabelValues(string(data.Persona)).Inc()
	c.HTML(http.StatusOK, "index.html", data)
}

// handlePersona stores the chosen persona in a cookie. Choosing the current
// persona rewrites the same cookie and changes nothing else.
func (s *Server) handlePersona(c *gin.Context) {
	p, err := persona.Parse(c.PostForm("persona"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(personaCookie, string(p), int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", "/")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleProjects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", s.page(c))
}

func (s *Server) handleIdentity(c *gin.Context) {
	c.HTML(http.StatusOK, "identity.html", s.page(c))
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.page(c))
}

func (s *Server) handleContact(c *gin.Context) {
	data := s.page(c)
	data.Persona = persona.ParseOr(c.PostForm("persona"), data.Persona)
	data.Theme = data.Persona.Theme()
	data.Form = contactForm{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if s.Contact == nil {
		data.Form.Error = "The contact form is offline. Please use the email link below."
		s.Metrics.ContactResults.WithLabelValues("unavailable").Inc()
		c.HTML(http.StatusServiceUnavailable, "contact.html", data)
		return
	}

	_, err := s.Contact.Submit(c.Request.Context(), contact.Submission{
		Name:     data.Form.Name,
		Email:    data.Form.Email,
		Message:  data.Form.Message,
		Persona:  data.Persona,
		HashedIP: s.Hasher.Hash(c.ClientIP()),
	})

	var ve *contact.ValidationError
	switch {
	case err == nil:
		s.Metrics.ContactResults.WithLabelValues("ok").Inc()
		data.Success = "Thank you for your message! I'll get back to you soon."
		c.HTML(http.StatusOK, "contact-success.html", data)
	case errors.As(err, &ve):
		s.Metrics.ContactResults.WithLabelValues("invalid").Inc()
		data.Form.Errors = ve.Fields
		c.HTML(http.StatusUnprocessableEntity, "contact.html", data)
	case errors.Is(err, contact.ErrRateLimited):
		s.Metrics.ContactResults.WithLabelValues("rate_limited").Inc()
		data.Form.Error = "You've sent a few messages already. Please try again in a minute."
		c.HTML(http.StatusTooManyRequests, "contact.html", data)
	default:
		s.Log.Error("contact.submit_failed", "error", err)
		s.Metrics.ContactResults.WithLabelValues("error").Inc()
		data.Form.Error = "Sorry, there was an error sending your message. Please try again later."
		c.HTML(http.StatusInternalServerError, "contact.html", data)
	}
}

func (s *Server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"RetentionDays": int(s.VisitorRetention.Hours() / 24),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.Store != nil {
		if err := s.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
