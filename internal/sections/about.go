package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type AboutData struct {
	Heading     string
	Paragraphs  []string
	Tech        []string
	Badge       string
	BadgeDetail string
}

func aboutSection() *Section {
	t := Timing{
		Threshold:    0.3,
		Stagger:      150 * time.Millisecond,
		ItemX:        -20,
		ItemDuration: 600 * time.Millisecond,
	}
	copyBlock := t.item("copy").Append(t.item("tech"))
	tree := t.container("container").Append(copyBlock, t.item("badge"))

	return &Section{
		ID:       "about",
		Template: "about",
		Options:  t.options(),
		seq:      reveal.NewSequencer(tree),
		data: func(Env) any {
			return AboutData{
				Heading:     "About Me",
				Paragraphs:  content.Paragraphs(),
				Tech:        content.Tech(),
				Badge:       content.AboutBadge,
				BadgeDetail: content.AboutBadgeDetail,
			}
		},
	}
}
