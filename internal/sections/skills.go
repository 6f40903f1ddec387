package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type SkillsData struct {
	Heading    string
	Subheading string
	Categories []content.SkillCategory
	Stats      []content.Stat
}

func skillsSection() *Section {
	t := Timing{
		Threshold:    0.3,
		Stagger:      100 * time.Millisecond,
		ItemY:        20,
		ItemDuration: 600 * time.Millisecond,
		RowDelay:     50 * time.Millisecond,
		TrailerDelay: 400 * time.Millisecond,
	}
	categories := content.SkillCategories()

	grid := t.container("grid")
	for i, cat := range categories {
		name := "cat-" + itoa(i)
		grid.Append(t.item(name).Append(t.rows(name, len(cat.Skills))...))
	}

	return &Section{
		ID:       "skills",
		Template: "skills",
		Options:  t.options(),
		seq:      reveal.NewSequencer(root(heading(), grid, t.trailer("stats", 0))),
		data: func(Env) any {
			return SkillsData{
				Heading:    content.SkillsHeading,
				Subheading: content.SkillsSubheading,
				Categories: categories,
				Stats:      content.SkillStats(),
			}
		},
	}
}
