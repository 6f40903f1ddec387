package reveal

import (
	"html/template"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration applies when a transition declares none.
const DefaultDuration = 300 * time.Millisecond

var easings = map[string]string{
	"":          "ease",
	"linear":    "linear",
	"easeIn":    "ease-in",
	"easeOut":   "ease-out",
	"easeInOut": "ease-in-out",
}

// CSS renders the frame's own props and transition as an inline style.
// Children are not included.
func (f Frame) CSS() template.CSS {
	var parts []string
	if v, ok := f.Props[Opacity]; ok {
		parts = append(parts, "opacity:"+num(v))
	}

	transform := f.transform()
	if transform != "" {
		parts = append(parts, "transform:"+transform)
	}

	var animated []string
	if _, ok := f.Props[Opacity]; ok {
		animated = append(animated, "opacity")
	}
	if transform != "" {
		animated = append(animated, "transform")
	}
	if len(animated) > 0 {
		timing := seconds(f.duration()) + " " + easing(f.Transition.Ease) + " " + seconds(f.Transition.Delay)
		list := make([]string, len(animated))
		for i, prop := range animated {
			list[i] = prop + " " + timing
		}
		parts = append(parts, "transition:"+strings.Join(list, ","))
	}
	return template.CSS(strings.Join(parts, ";"))
}

func (f Frame) duration() time.Duration {
	if f.Transition.Duration > 0 {
		return f.Transition.Duration
	}
	return DefaultDuration
}

func (f Frame) transform() string {
	var fns []string
	x, hasX := f.Props[X]
	y, hasY := f.Props[Y]
	if hasX || hasY {
		fns = append(fns, "translate("+num(x)+"px,"+num(y)+"px)")
	}
	if r, ok := f.Props[Rotate]; ok {
		fns = append(fns, "rotate("+num(r)+"deg)")
	}
	if s, ok := f.Props[Scale]; ok {
		fns = append(fns, "scale("+num(s)+")")
	}
	return strings.Join(fns, " ")
}

func easing(name string) string {
	if css, ok := easings[name]; ok {
		return css
	}
	return name
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
