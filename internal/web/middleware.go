package web

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ikansh/ikansh-dev/internal/store"
)

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// visitorTracking records a page view after the handler ran. Only the salted
// hash of the client IP is stored, and DNT requests are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.Store == nil || c.GetHeader("DNT") == "1" || c.Writer.Status() != 200 {
			return
		}
		err := s.Store.RecordVisit(c.Request.Context(), store.Visit{
			HashedIP:  s.Hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Persona:   c.GetString(personaKey),
			Timestamp: s.now(),
		})
		if err != nil {
			s.Log.Error("visitors.record_failed", "error", err)
		}
	}
}
