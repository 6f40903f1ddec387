package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type FooterData struct {
	Name   string
	Title  string
	Links  []content.Link
	Social []content.Link
	Year   int
}

func footerSection() *Section {
	t := Timing{
		ItemY:        10,
		ItemDuration: 600 * time.Millisecond,
	}
	tree := root()
	// Columns reveal 100ms apart.
	for i, name := range []string{"brand", "links", "connect"} {
		tree.Append(&reveal.Node{
			Name: name,
			Variants: reveal.Entrance(t.ItemX, t.ItemY, reveal.Transition{
				Duration: t.ItemDuration,
				Delay:    time.Duration(i) * 100 * time.Millisecond,
			}),
		})
	}
	tree.Append(&reveal.Node{
		Name:     "copyright",
		Variants: reveal.Entrance(0, 0, reveal.Transition{Duration: t.ItemDuration}),
	})

	return &Section{
		ID:       "footer",
		Template: "footer",
		Options:  t.options(),
		seq:      reveal.NewSequencer(tree),
		data: func(env Env) any {
			now := env.Now
			if now.IsZero() {
				now = time.Now()
			}
			return FooterData{
				Name:   content.Name,
				Title:  content.Title,
				Links:  content.FooterLinks(),
				Social: content.SocialLinks(),
				Year:   now.Year(),
			}
		},
	}
}
