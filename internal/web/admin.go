package web

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ikansh/ikansh-dev/internal/store"
)

const adminCookie = "admin_token"

func (s *Server) adminEnabled() bool {
	return s.Store != nil && s.Admin.Username != "" && s.Admin.Password != ""
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// adminAuth redirects to the login page unless the admin cookie holds this
// process's token.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// setupAdminRoutes mounts the dashboard. Without ADMIN_USERNAME and
// ADMIN_PASSWORD it is not mounted at all.
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if !s.adminEnabled() {
		s.Log.Info("admin.disabled", "reason", "ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		visitor := s.Hasher.Hash(c.ClientIP())
		userOK := equal(c.PostForm("username"), s.Admin.Username)
		passOK := equal(c.PostForm("password"), s.Admin.Password)
		if !userOK || !passOK {
			s.Log.Warn("admin.login_failed", "hashed_ip", visitor)
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.Log.Info("admin.login", "hashed_ip", visitor)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin", s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.Store.Stats(c.Request.Context(), s.now())
		if err != nil {
			s.Log.Error("admin.stats_failed", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.Store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.Store.Messages(c.Request.Context(), 200)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, msgs)
	})

	admin.DELETE("/messages/:id", func(c *gin.Context) {
		id := c.Param("id")
		err := s.Store.DeleteMessage(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		case err != nil:
			s.Log.Error("admin.delete_failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		default:
			s.Log.Info("admin.message_deleted", "id", id)
			c.Status(http.StatusOK)
		}
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		s.cleanup(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup done"})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.Store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
