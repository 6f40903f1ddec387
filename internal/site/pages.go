package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
	"github.com/18gaurav2021/portfolio/internal/sections"
	"github.com/18gaurav2021/portfolio/internal/session"
)

// Page is the model of the full document.
type Page struct {
	Title string
	Nav   sections.Navigation
	Views map[string]sections.View
}

// revealReport is the intersection report an hx-trigger posts.
type revealReport struct {
	Ratio        float64 `form:"ratio" binding:"gte=0,lte=1"`
	Intersecting bool    `form:"intersecting"`
}

func (s *Server) env(sess *session.Session) sections.Env {
	return sections.Env{Now: s.clock.Now(), Contact: sess.Contact.Snapshot()}
}

func (s *Server) view(sess *session.Session, sec *sections.Section) sections.View {
	inView, latched := sess.Signal(sec.ID)
	return sec.View(inView, latched, s.env(sess))
}

func (s *Server) handleIndex(c *gin.Context) {
	sess := s.freshSession(c)

	views := make(map[string]sections.View)
	for _, sec := range s.set.All() {
		views[sec.ID] = s.view(sess, sec)
	}
	c.HTML(http.StatusOK, "index", Page{
		Title: content.Name + " | " + content.Title,
		Nav:   sections.NewNavigation(false),
		Views: views,
	})
}

// handleReveal feeds one intersection report to the section's oracle and
// answers with the section re-rendered in its resulting state.
func (s *Server) handleReveal(c *gin.Context) {
	sec, err := s.set.Get(c.Param("section"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown section")
		return
	}

	var in revealReport
	if err := c.ShouldBind(&in); err != nil {
		c.String(http.StatusBadRequest, "bad intersection report")
		return
	}

	sess := currentSession(c)
	inView, err := sess.Report(sec.ID, reveal.Intersection{Ratio: in.Ratio, Intersecting: in.Intersecting})
	if errors.Is(err, sections.ErrUnknownSection) {
		c.String(http.StatusNotFound, "unknown section")
		return
	}
	s.log.Debug().
		Str("session", sess.ID).
		Str("section", sec.ID).
		Float64("ratio", in.Ratio).
		Bool("in_view", inView).
		Msg("intersection report")

	v := s.view(sess, sec)
	c.HTML(http.StatusOK, v.Template, v)
}

func (s *Server) handleNavMenu(c *gin.Context) {
	open, _ := strconv.ParseBool(c.Query("open"))
	c.HTML(http.StatusOK, "nav", sections.NewNavigation(open))
}
