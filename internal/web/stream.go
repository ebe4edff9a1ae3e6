package web

import (
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ikansh/ikansh-dev/internal/rain"
	"github.com/ikansh/ikansh-dev/internal/typing"
)

// maxSurface bounds the rain field a client may ask for, in pixels per side.
const maxSurface = 8192

// streamTyping sends one "frame" event per typewriter tick or caret blink. The
// machine belongs to this request and stops with it.
func (s *Server) streamTyping(c *gin.Context) {
	m, err := typing.New(s.Profile.Phrases, s.Typing)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx := c.Request.Context()
	updates := make(chan typing.Update)
	go func() {
		defer close(updates)
		_ = typing.Run(ctx, m, typing.CursorInterval, func(u typing.Update) {
			select {
			case updates <- u:
			case <-ctx.Done():
			}
		})
	}()

	s.stream(c, "typing", func() (any, bool) {
		u, ok := <-updates
		return u, ok
	})
}

// streamRain sends the drawn cells of a field sized from ?width= and ?height=.
// A resized client reconnects with new dimensions.
func (s *Server) streamRain(c *gin.Context) {
	w, errW := strconv.Atoi(c.Query("width"))
	h, errH := strconv.Atoi(c.Query("height"))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		c.String(http.StatusBadRequest, "width and height must be positive integers")
		return
	}
	w, h = min(w, maxSurface), min(h, maxSurface)

	field := rain.NewField(w, h, s.Rain.CellSize, rain.WithResetChance(s.Rain.ResetChance))
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	ctx := c.Request.Context()
	frames := make(chan rain.Frame)
	go func() {
		defer close(frames)
		_ = rain.Run(ctx, field, rng, s.Rain.Interval, func(f rain.Frame) {
			select {
			case frames <- f:
			case <-ctx.Done():
			}
		})
	}()

	s.stream(c, "rain", func() (any, bool) {
		f, ok := <-frames
		return f, ok
	})
}

// stream writes SSE "frame" events from next until it reports false or the
// client goes away.
func (s *Server) stream(c *gin.Context, name string, next func() (any, bool)) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	gauge := s.Metrics.ActiveStreams.WithLabelValues(name)
	gauge.Inc()
	defer gauge.Dec()
	sent := s.Metrics.StreamFrames.WithLabelValues(name)

	c.Stream(func(w io.Writer) bool {
		v, ok := next()
		if !ok {
			return false
		}
		c.SSEvent("frame", v)
		sent.Inc()
		return true
	})

	s.Log.Debug("stream.closed", "stream", name)
}
