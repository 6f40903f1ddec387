// Package session keeps each visitor's reveal and contact state in memory.
// Nothing here survives a restart.
package session

import (
	"sync"
	"time"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/reveal"
	"github.com/18gaurav2021/portfolio/internal/sections"
	"github.com/18gaurav2021/portfolio/internal/viewport"
)

// Session is one visitor: a viewport hub with every section mounted, one
// oracle per section and a contact controller.
type Session struct {
	ID      string
	Hub     *viewport.Hub
	Contact *contact.Controller

	oracles map[string]*reveal.Oracle

	mu       sync.Mutex
	lastSeen time.Time
	closed   bool
}

func newSession(id string, set *sections.Set, ctrl *contact.Controller, now time.Time, onReveal func(section string)) *Session {
	s := &Session{
		ID:       id,
		Hub:      viewport.NewHub(),
		Contact:  ctrl,
		oracles:  make(map[string]*reveal.Oracle),
		lastSeen: now,
	}
	s.Hub.Mount(set.IDs()...)
	for _, sec := range set.All() {
		o := reveal.Watch(s.Hub, sec.ID, sec.Options)
		if onReveal != nil {
			id := sec.ID
			o.OnChange(func(inView bool) {
				if inView {
					onReveal(id)
				}
			})
		}
		s.oracles[sec.ID] = o
	}
	return s
}

// Report delivers an intersection report for a section and returns the
// resulting signal.
func (s *Session) Report(section string, in reveal.Intersection) (inView bool, err error) {
	o, ok := s.oracles[section]
	if !ok {
		return false, sections.ErrUnknownSection
	}
	s.Hub.Dispatch(section, in)
	return o.InView(), nil
}

// Signal returns a section's current signal and whether its oracle has
// stopped listening.
func (s *Session) Signal(section string) (inView, latched bool) {
	o, ok := s.oracles[section]
	if !ok {
		return false, true
	}
	return o.InView(), o.Detached()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Close releases every oracle subscription, unmounts the sections and
// stops the contact timer.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	for id, o := range s.oracles {
		o.Close()
		s.Hub.Unmount(id)
	}
	s.Contact.Close()
}
