// Package sections binds each page area's static content to its reveal
// configuration. Every section owns its variant tree; nothing is shared
// between sections.
package sections

import (
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

// ErrUnknownSection is returned for an id with no section.
var ErrUnknownSection = errors.New("sections: unknown section")

// Trigger says what starts a section's reveal in the browser.
type Trigger int

const (
	// OnIntersect waits for the element to cross its threshold.
	OnIntersect Trigger = iota
	// OnLoad reveals as soon as the page has loaded.
	OnLoad
)

// Env carries per-request inputs a view may depend on.
type Env struct {
	Now     time.Time
	Contact contact.Snapshot
}

// Section is one page area with its own reveal configuration.
type Section struct {
	ID       string
	Template string
	Trigger  Trigger
	Options  reveal.Options

	seq  *reveal.Sequencer
	data func(Env) any
}

// Frames resolves the section's variant tree against inView.
func (s *Section) Frames(inView bool) map[string]reveal.Frame {
	return s.seq.Frames(inView)
}

// View builds the template model. latched reports whether the section's
// oracle has stopped listening; a latched or visible section renders no
// further trigger.
func (s *Section) View(inView, latched bool, env Env) View {
	v := View{
		ID:       s.ID,
		Template: s.Template,
		InView:   inView,
		Data:     s.data(env),
		frames:   s.Frames(inView),
	}
	if !inView && !latched {
		v.Trigger = s.hxTrigger()
		v.Vals = s.hxVals()
	}
	return v
}

func (s *Section) hxTrigger() string {
	if s.Trigger == OnLoad {
		return "load"
	}
	t := "intersect threshold:" + strconv.FormatFloat(s.Options.Threshold, 'f', -1, 64)
	if s.Options.TriggerOnce {
		t = "intersect once threshold:" + strconv.FormatFloat(s.Options.Threshold, 'f', -1, 64)
	}
	return t
}

// hxVals is the intersection report the browser sends when the trigger
// fires: the element crossed its threshold, so the ratio is at least that.
func (s *Section) hxVals() string {
	ratio := s.Options.Threshold
	if s.Trigger == OnLoad {
		ratio = 1
	}
	return fmt.Sprintf(`{"ratio":"%s","intersecting":"true"}`, strconv.FormatFloat(ratio, 'f', -1, 64))
}

// View is what a section template renders.
type View struct {
	ID       string
	Template string
	Trigger  string
	Vals     string
	InView   bool
	Data     any

	frames map[string]reveal.Frame
}

// Motion is one animated element as the template sees it.
type Motion struct {
	ID    string
	State reveal.State
	Style template.CSS
}

// M looks up the animated element called name. The returned ID is unique
// on the page and stable across renders so swapped fragments transition.
func (v View) M(name string) Motion {
	f, ok := v.frames[name]
	if !ok {
		return Motion{ID: v.ID + "-" + name}
	}
	return Motion{ID: v.ID + "-" + name, State: f.State, Style: f.CSS()}
}

// Mf is M with a formatted name, for list items.
func (v View) Mf(format string, args ...any) Motion {
	return v.M(fmt.Sprintf(format, args...))
}

// Set is the ordered collection of page sections.
type Set struct {
	ordered []*Section
	byID    map[string]*Section
}

// New builds every section in page order.
func New() *Set {
	s := &Set{byID: make(map[string]*Section)}
	for _, sec := range []*Section{
		heroSection(),
		aboutSection(),
		skillsSection(),
		experienceSection(),
		projectsSection(),
		contactSection(),
		footerSection(),
	} {
		s.ordered = append(s.ordered, sec)
		s.byID[sec.ID] = sec
	}
	return s
}

func (s *Set) All() []*Section {
	return append([]*Section(nil), s.ordered...)
}

func (s *Set) Get(id string) (*Section, error) {
	sec, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
	}
	return sec, nil
}

func (s *Set) IDs() []string {
	ids := make([]string, len(s.ordered))
	for i, sec := range s.ordered {
		ids[i] = sec.ID
	}
	return ids
}
