// Package web serves the portfolio page, its HTMX fragments, the animation
// event streams, the contact endpoint and the admin dashboard.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ikansh/ikansh-dev/internal/config"
	"github.com/ikansh/ikansh-dev/internal/contact"
	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/metrics"
	"github.com/ikansh/ikansh-dev/internal/privacy"
	"github.com/ikansh/ikansh-dev/internal/rain"
	"github.com/ikansh/ikansh-dev/internal/store"
	"github.com/ikansh/ikansh-dev/internal/typing"
)

//go:embed templates/*.html static/*
var assets embed.FS

// RainOptions configures the background stream.
type RainOptions struct {
	CellSize    int
	Interval    time.Duration
	ResetChance float64
}

type Deps struct {
	Profile *content.Profile
	Store   *store.Store
	Contact *contact.Service
	Limiter *contact.Limiter
	Hasher  privacy.Hasher
	Metrics *metrics.Metrics
	Admin   config.Admin
	Log     *slog.Logger

	Typing typing.Options
	Rain   RainOptions

	// VisitorRetention is how long visits are kept; zero keeps them forever.
	VisitorRetention time.Duration
}

type Server struct {
	Deps
	engine     *gin.Engine
	adminToken string
	now        func() time.Time
}

func New(d Deps) (*Server, error) {
	if d.Profile == nil {
		d.Profile = content.Default()
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Typing.Finale == "" {
		d.Typing.Finale = d.Profile.Finale
	}
	if d.Rain.CellSize <= 0 {
		d.Rain.CellSize = rain.DefaultCellSize
	}
	if d.Rain.Interval <= 0 {
		d.Rain.Interval = rain.DefaultInterval
	}
	if d.Rain.ResetChance <= 0 {
		d.Rain.ResetChance = rain.DefaultResetChance
	}
	if _, err := typing.New(d.Profile.Phrases, d.Typing); err != nil {
		return nil, fmt.Errorf("typing animation: %w", err)
	}

	token, err := privacy.Token()
	if err != nil {
		return nil, err
	}
	s := &Server{Deps: d, adminToken: token, now: time.Now}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Log))
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	s.setupRoutes(r)
	s.setupAdminRoutes(r)
	s.engine = r
	return s, nil
}

func (s *Server) setupRoutes(r *gin.Engine) {
	pages := r.Group("/", s.visitorTracking())
	pages.GET("/", s.handleIndex)

	r.POST("/persona", s.handlePersona)
	r.GET("/projects", s.handleProjects)
	r.GET("/identity", s.handleIdentity)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContact)
	r.GET("/privacy", s.handlePrivacy)

	r.GET("/stream/typing", s.streamTyping)
	r.GET("/stream/rain", s.streamRain)

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.Metrics.Handler()))
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully. Request
// contexts derive from ctx so open event streams end with it.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go s.janitor(ctx)

	errc := make(chan error, 1)
	go func() {
		s.Log.Info("server.listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.Log.Info("server.stopped")
	return nil
}

// janitor expires old visits and idle rate limiter entries once a day.
func (s *Server) janitor(ctx context.Context) {
	t := time.NewTicker(24 * time.Hour)
	defer t.Stop()
	for {
		s.cleanup(ctx)
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (s *Server) cleanup(ctx context.Context) {
	if s.Limiter != nil {
		s.Limiter.Prune(time.Hour)
	}
	if s.Store == nil || s.VisitorRetention <= 0 {
		return
	}
	n, err := s.Store.CleanupVisits(ctx, s.now().Add(-s.VisitorRetention))
	if err != nil {
		s.Log.Error("visitors.cleanup_failed", "error", err)
		return
	}
	if n > 0 {
		s.Log.Info("visitors.cleanup", "removed", n)
	}
}
