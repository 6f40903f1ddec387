package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type ExperienceData struct {
	Heading    string
	Subheading string
	Entries    []content.Experience
}

func experienceSection() *Section {
	t := Timing{
		Threshold:    0.3,
		Stagger:      150 * time.Millisecond,
		ItemX:        -30,
		ItemDuration: 600 * time.Millisecond,
		RowDelay:     50 * time.Millisecond,
	}
	entries := content.Experiences()

	timeline := t.container("timeline")
	for i, e := range entries {
		name := "exp-" + itoa(i)
		timeline.Append(t.item(name).Append(t.rows(name, len(e.Highlights))...))
	}

	return &Section{
		ID:       "experience",
		Template: "experience",
		Options:  t.options(),
		seq:      reveal.NewSequencer(root(heading(), timeline)),
		data: func(Env) any {
			return ExperienceData{
				Heading:    content.ExperienceHeading,
				Subheading: content.ExperienceSubheading,
				Entries:    entries,
			}
		},
	}
}
