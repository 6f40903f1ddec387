package sections

import (
	"strconv"
	"time"

	"github.com/18gaurav2021/portfolio/internal/reveal"
)

// Timing is one section's reveal configuration. Each section declares its
// own value; the builders below only read it.
type Timing struct {
	Threshold     float64
	Stagger       time.Duration
	DelayChildren time.Duration

	ItemX, ItemY float64
	ItemDuration time.Duration
	ItemEase     string

	// RowDelay spaces nested rows (skills, highlights) inside an item.
	RowDelay time.Duration
	// TrailerDelay holds back the block after the grid (stats, call to action).
	TrailerDelay time.Duration
}

func (t Timing) options() reveal.Options {
	return reveal.Options{Threshold: t.Threshold, TriggerOnce: true}
}

func (t Timing) item(name string) *reveal.Node {
	return &reveal.Node{
		Name: name,
		Variants: reveal.Fade(t.ItemX, t.ItemY, reveal.Transition{
			Duration: t.ItemDuration,
			Ease:     t.ItemEase,
		}),
	}
}

func (t Timing) container(name string) *reveal.Node {
	return &reveal.Node{Name: name, Variants: reveal.Stagger(t.Stagger, t.DelayChildren)}
}

// rows builds n nested rows sliding in from the left, each RowDelay after
// the previous one. Rows are children of their card, so they start after the
// card's own stagger offset rather than animating on a separate clock. This
// is intentional: a row never appears before the card that holds it.
func (t Timing) rows(prefix string, n int) []*reveal.Node {
	out := make([]*reveal.Node, n)
	for i := range out {
		out[i] = &reveal.Node{
			Name: prefix + "-" + itoa(i),
			Variants: reveal.Entrance(-10, 0, reveal.Transition{
				Delay: time.Duration(i) * t.RowDelay,
			}),
		}
	}
	return out
}

// heading is the title block above a section's grid.
func heading() *reveal.Node {
	return &reveal.Node{
		Name:     "header",
		Variants: reveal.Entrance(0, 20, reveal.Transition{Duration: 600 * time.Millisecond}),
	}
}

// trailer is the delayed block after a grid. y is its rise; zero fades only.
func (t Timing) trailer(name string, y float64) *reveal.Node {
	return &reveal.Node{
		Name: name,
		Variants: reveal.Entrance(0, y, reveal.Transition{
			Duration: 600 * time.Millisecond,
			Delay:    t.TrailerDelay,
		}),
	}
}

func root(children ...*reveal.Node) *reveal.Node {
	return (&reveal.Node{Name: "root"}).Append(children...)
}

func itoa(i int) string { return strconv.Itoa(i) }
