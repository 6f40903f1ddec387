package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type HeroData struct {
	Welcome   string
	Name      string
	Title     string
	Summary   string
	Primary   content.Link
	Secondary content.Link
	Stats     []content.Stat
}

func heroSection() *Section {
	t := Timing{
		Stagger:       200 * time.Millisecond,
		DelayChildren: 100 * time.Millisecond,
		ItemY:         20,
		ItemDuration:  800 * time.Millisecond,
		ItemEase:      "easeOut",
	}
	intro := t.container("intro")
	for _, name := range []string{"welcome", "name", "title", "summary", "cta", "stats"} {
		intro.Append(t.item(name))
	}
	orb := &reveal.Node{
		Name: "orb",
		Variants: reveal.Variants{
			reveal.Initial: {Props: reveal.Props{reveal.Opacity: 0, reveal.Scale: 0.8}},
			reveal.Visible: {
				Props:      reveal.Props{reveal.Opacity: 1, reveal.Scale: 1},
				Transition: reveal.Transition{Duration: time.Second, Delay: 300 * time.Millisecond},
			},
		},
	}

	return &Section{
		ID:       "hero",
		Template: "hero",
		Trigger:  OnLoad,
		Options:  reveal.Options{TriggerOnce: true},
		seq:      reveal.NewSequencer(root(intro, orb)),
		data: func(Env) any {
			return HeroData{
				Welcome:   content.Welcome,
				Name:      content.Name,
				Title:     content.Title,
				Summary:   content.HeroSummary,
				Primary:   content.Link{Name: "View My Work", Href: "#projects"},
				Secondary: content.Link{Name: "Get In Touch", Href: "#contact"},
				Stats:     content.HeroStats(),
			}
		},
	}
}
