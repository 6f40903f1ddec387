package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/18gaurav2021/portfolio/internal/observability"
	"github.com/18gaurav2021/portfolio/internal/session"
)

const (
	sessionCookie = "portfolio_sid"
	sessionKey    = "session"
)

// sessionMiddleware attaches the visitor's session, starting a new one
// when the cookie is missing or has expired.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookie)
		sess, created := s.sessions.Ensure(id)
		if created {
			s.setSessionCookie(c, sess)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// freshSession replaces the visitor's session. A full page load remounts
// every section, so reveal and form state start over.
func (s *Server) freshSession(c *gin.Context) *session.Session {
	if id, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.Remove(id)
	}
	sess, _ := s.sessions.Ensure("")
	s.setSessionCookie(c, sess)
	c.Set(sessionKey, sess)
	return sess
}

func (s *Server) setSessionCookie(c *gin.Context, sess *session.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sess.ID, 0, "/", "", c.Request.TLS != nil, true)
	observability.SetActiveSessions(s.sessions.Len())
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
