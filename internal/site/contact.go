package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/observability"
	"github.com/18gaurav2021/portfolio/internal/sections"
	"github.com/18gaurav2021/portfolio/internal/session"
)

func (s *Server) formView(sess *session.Session) sections.FormView {
	return sections.NewFormView(sess.Contact.Snapshot(), s.clock.Now())
}

// handleContactField mirrors one input into the session's form as the
// visitor types. Fields posted with the rendered form carry its rev; an
// edit that arrives after the form was submitted is dropped.
func (s *Server) handleContactField(c *gin.Context) {
	field, err := contact.ParseField(c.PostForm("field"))
	if err != nil {
		c.String(http.StatusBadRequest, "unknown field")
		return
	}
	sess := currentSession(c)
	value := c.PostForm(string(field))

	if raw, ok := c.GetPostForm("rev"); ok {
		rev, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			c.String(http.StatusBadRequest, "bad rev")
			return
		}
		err = sess.Contact.UpdateAt(rev, field, value)
	} else {
		err = sess.Contact.Update(field, value)
	}

	switch {
	case errors.Is(err, contact.ErrStale):
		c.Status(http.StatusConflict)
	case err != nil:
		c.Status(http.StatusGone)
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	sess := currentSession(c)

	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		observability.RecordContact(observability.OutcomeIncomplete)
		c.HTML(http.StatusUnprocessableEntity, "contact-form", s.formView(sess))
		return
	}

	snap, err := sess.Contact.Submit(c.Request.Context(), form)
	switch {
	case errors.Is(err, contact.ErrIncomplete):
		observability.RecordContact(observability.OutcomeIncomplete)
		c.HTML(http.StatusUnprocessableEntity, "contact-form", s.formView(sess))
		return
	case err != nil:
		observability.RecordContact(observability.OutcomeFailed)
		s.log.Error().Err(err).Str("session", sess.ID).Msg("contact delivery failed")
		c.HTML(http.StatusBadGateway, "contact-form", s.formView(sess))
		return
	}

	observability.RecordContact(observability.OutcomeAcknowledged)
	s.log.Info().Str("session", sess.ID).Msg("contact form acknowledged")
	c.HTML(http.StatusOK, "contact-form", sections.NewFormView(snap, s.clock.Now()))
}

// handleContactStatus re-renders the acknowledgement. While it is showing
// the fragment asks again once the remaining time has passed.
func (s *Server) handleContactStatus(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-status", s.formView(currentSession(c)))
}
