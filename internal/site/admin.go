package site

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/18gaurav2021/portfolio/internal/observability"
)

const trackTimeout = 2 * time.Second

// untracked paths never count as page views.
var untracked = []string{"/static/", "/admin/", "/healthz", "/metrics", "/favicon"}

// visitorTrackingMiddleware records full page loads. Fragment requests,
// operational endpoints and visitors sending DNT are skipped; IPs are
// hashed before they are stored.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.visits == nil || !trackable(c) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), trackTimeout)
		defer cancel()
		if err := s.visits.RecordVisit(ctx, c.ClientIP(), c.GetHeader("User-Agent"), c.Request.URL.Path); err != nil {
			s.log.Error().Err(err).Msg("error recording visit")
		}
		c.Next()
	}
}

func trackable(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet || c.GetHeader("HX-Request") == "true" {
		return false
	}
	if c.GetHeader("DNT") == "1" {
		return false
	}
	path := c.Request.URL.Path
	for _, prefix := range untracked {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// recordReveal is the session store's hook for a section coming into view.
func (s *Server) recordReveal(sessionID, section string) {
	observability.RecordReveal(section)
	if s.visits == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
	defer cancel()
	if err := s.visits.RecordReveal(ctx, sessionID, section); err != nil {
		s.log.Error().Err(err).Str("section", section).Msg("error recording reveal")
	}
}

func (s *Server) handleAdminStats(c *gin.Context) {
	if s.visits == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "visitor tracking is disabled"})
		return
	}
	stats, err := s.visits.Stats(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("error loading visitor stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
