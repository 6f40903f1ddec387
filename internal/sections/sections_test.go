package sections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/18gaurav2021/portfolio/internal/contact"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

func TestSetOrderAndLookup(t *testing.T) {
	set := New()
	assert.Equal(t, []string{"hero", "about", "skills", "experience", "projects", "contact", "footer"}, set.IDs())

	sec, err := set.Get("skills")
	require.NoError(t, err)
	assert.Equal(t, "skills", sec.Template)

	_, err = set.Get("blog")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestNavigationAnchorsMatchExactlyOneSection(t *testing.T) {
	set := New()
	counts := map[string]int{}
	for _, id := range set.IDs() {
		counts[id]++
	}
	for _, item := range NewNavigation(false).Items {
		id, ok := item.Anchor()
		require.True(t, ok, item.Href)
		assert.Equal(t, 1, counts[id], "anchor %s", item.Href)
	}
}

func TestSectionOptions(t *testing.T) {
	set := New()
	tests := []struct {
		id      string
		trigger string
		opts    reveal.Options
	}{
		{id: "hero", trigger: "load", opts: reveal.Options{TriggerOnce: true}},
		{id: "about", trigger: "intersect once threshold:0.3", opts: reveal.Options{Threshold: 0.3, TriggerOnce: true}},
		{id: "skills", trigger: "intersect once threshold:0.3", opts: reveal.Options{Threshold: 0.3, TriggerOnce: true}},
		{id: "experience", trigger: "intersect once threshold:0.3", opts: reveal.Options{Threshold: 0.3, TriggerOnce: true}},
		{id: "projects", trigger: "intersect once threshold:0.3", opts: reveal.Options{Threshold: 0.3, TriggerOnce: true}},
		{id: "contact", trigger: "intersect once threshold:0.3", opts: reveal.Options{Threshold: 0.3, TriggerOnce: true}},
		{id: "footer", trigger: "intersect once threshold:0", opts: reveal.Options{TriggerOnce: true}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			sec, err := set.Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.opts, sec.Options)

			v := sec.View(false, false, Env{})
			assert.Equal(t, tt.trigger, v.Trigger)
			assert.Contains(t, v.Vals, `"intersecting":"true"`)

			assert.Empty(t, sec.View(true, true, Env{}).Trigger, "visible sections stop listening")
			assert.Empty(t, sec.View(false, true, Env{}).Trigger, "latched sections stop listening")
		})
	}
}

func TestAboutStaggersInDeclarationOrder(t *testing.T) {
	sec, err := New().Get("about")
	require.NoError(t, err)

	frames := sec.Frames(true)
	assert.Equal(t, time.Duration(0), frames["copy"].Transition.Delay)
	assert.Equal(t, 150*time.Millisecond, frames["badge"].Transition.Delay)
	assert.Equal(t, reveal.Props{reveal.Opacity: 1, reveal.X: 0}, frames["badge"].Props)

	hidden := sec.Frames(false)
	assert.Equal(t, reveal.Props{reveal.Opacity: 0, reveal.X: -20}, hidden["badge"].Props)
	assert.Equal(t, reveal.Hidden, hidden["container"].State)
}

func TestHeroDelaysChildren(t *testing.T) {
	sec, err := New().Get("hero")
	require.NoError(t, err)
	frames := sec.Frames(true)

	for i, name := range []string{"welcome", "name", "title", "summary", "cta", "stats"} {
		want := 100*time.Millisecond + time.Duration(i)*200*time.Millisecond
		assert.Equal(t, want, frames[name].Transition.Delay, name)
		assert.Equal(t, "easeOut", frames[name].Transition.Ease)
	}
	assert.Equal(t, 300*time.Millisecond, frames["orb"].Transition.Delay)
	assert.Equal(t, reveal.Initial, sec.Frames(false)["orb"].State)
}

func TestExperienceHighlightsFollowTheirEntry(t *testing.T) {
	sec, err := New().Get("experience")
	require.NoError(t, err)
	frames := sec.Frames(true)

	assert.Equal(t, 300*time.Millisecond, frames["exp-2"].Transition.Delay)
	assert.Equal(t, 300*time.Millisecond, frames["exp-2-0"].Transition.Delay)
	assert.Equal(t, 400*time.Millisecond, frames["exp-2-2"].Transition.Delay)

	hidden := sec.Frames(false)
	assert.Equal(t, reveal.Initial, hidden["exp-2-2"].State)
	assert.Equal(t, reveal.Props{reveal.Opacity: 0, reveal.X: -10}, hidden["exp-2-2"].Props)
}

func TestSkillsTrailerWaits(t *testing.T) {
	sec, err := New().Get("skills")
	require.NoError(t, err)
	frames := sec.Frames(true)
	assert.Equal(t, 400*time.Millisecond, frames["stats"].Transition.Delay)
	assert.Equal(t, 200*time.Millisecond, frames["cat-2"].Transition.Delay)
	assert.Equal(t, 550*time.Millisecond, frames["cat-2-7"].Transition.Delay)
}

func TestSectionsDoNotShareVariants(t *testing.T) {
	set := New()
	about, _ := set.Get("about")
	projects, _ := set.Get("projects")

	about.Frames(false)["container"].Props[reveal.Opacity] = 0.5
	assert.Equal(t, 0.0, about.Frames(false)["container"].Props[reveal.Opacity])
	assert.Equal(t, 0.0, projects.Frames(false)["grid"].Props[reveal.Opacity])
}

func TestSetsAreBuiltIndependently(t *testing.T) {
	first, _ := New().Get("about")
	first.Options.Threshold = 0.9
	first.Options.TriggerOnce = false

	second, _ := New().Get("about")
	assert.Equal(t, reveal.Options{Threshold: 0.3, TriggerOnce: true}, second.Options)
}

func TestViewMotion(t *testing.T) {
	sec, err := New().Get("projects")
	require.NoError(t, err)

	v := sec.View(false, false, Env{})
	m := v.Mf("proj-%d", 1)
	assert.Equal(t, "projects-proj-1", m.ID)
	assert.Equal(t, reveal.Hidden, m.State)
	assert.Contains(t, string(m.Style), "opacity:0")
	assert.Contains(t, string(m.Style), "translate(0px,20px)")

	shown := sec.View(true, true, Env{}).Mf("proj-%d", 1)
	assert.Equal(t, m.ID, shown.ID, "ids are stable across renders")
	assert.Contains(t, string(shown.Style), "0.15s")

	missing := v.M("nope")
	assert.Equal(t, "projects-nope", missing.ID)
	assert.Empty(t, missing.Style)
}

func TestContactFormView(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	idle := NewFormView(contact.Snapshot{Form: contact.Form{Name: "Ja"}}, now)
	assert.Equal(t, "Send Message", idle.Button())
	assert.Zero(t, idle.PollAfter)
	assert.Equal(t, "Ja", idle.Form.Name)

	acked := NewFormView(contact.Snapshot{Submitted: true, ResetAt: now.Add(1500 * time.Millisecond)}, now)
	assert.Equal(t, "Message Sent!", acked.Button())
	assert.Equal(t, int64(1500), acked.PollAfter)

	overdue := NewFormView(contact.Snapshot{Submitted: true, ResetAt: now.Add(-time.Second)}, now)
	assert.Equal(t, int64(1), overdue.PollAfter)

	sec, err := New().Get("contact")
	require.NoError(t, err)
	data := sec.View(false, false, Env{Now: now, Contact: contact.Snapshot{Submitted: true, ResetAt: now.Add(time.Second)}}).Data.(ContactData)
	assert.True(t, data.Form.Submitted)
	assert.Len(t, data.Social, 2)
}

func TestFooterYear(t *testing.T) {
	sec, err := New().Get("footer")
	require.NoError(t, err)
	data := sec.View(false, false, Env{Now: time.Date(2031, 5, 1, 0, 0, 0, 0, time.UTC)}).Data.(FooterData)
	assert.Equal(t, 2031, data.Year)
	assert.Len(t, data.Links, 4)

	frames := sec.Frames(true)
	assert.Equal(t, 200*time.Millisecond, frames["connect"].Transition.Delay)
}

func TestNavigationToggle(t *testing.T) {
	n := NewNavigation(false)
	assert.True(t, n.Toggled())
	assert.Equal(t, "GD", n.Brand)
	assert.False(t, NewNavigation(true).Toggled())
}
