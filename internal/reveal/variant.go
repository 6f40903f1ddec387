package reveal

import (
	"maps"
	"time"
)

// State names an animation variant.
type State string

const (
	Hidden  State = "hidden"
	Visible State = "visible"
	Initial State = "initial"
)

// Property is an animatable visual property.
type Property string

const (
	Opacity Property = "opacity"
	X       Property = "x"
	Y       Property = "y"
	Rotate  Property = "rotate"
	Scale   Property = "scale"
)

// Props is a set of declared visual properties. Translation is in pixels,
// rotation in degrees.
type Props map[Property]float64

// Clone returns an independent copy. Cloning nil yields an empty set.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	maps.Copy(out, p)
	return out
}

// Transition describes how a variant is reached.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     string

	// StaggerChildren is added per child, in declaration order.
	StaggerChildren time.Duration
	// DelayChildren offsets the first child.
	DelayChildren time.Duration
}

// Variant is one named state of a node.
type Variant struct {
	Props      Props
	Transition Transition
}

func (v Variant) clone() Variant {
	return Variant{Props: v.Props.Clone(), Transition: v.Transition}
}

// Variants maps states to their declared variants.
type Variants map[State]Variant

// Clone deep-copies the map.
func (v Variants) Clone() Variants {
	if v == nil {
		return nil
	}
	out := make(Variants, len(v))
	for state, variant := range v {
		out[state] = variant.clone()
	}
	return out
}

// SelectState picks the state to apply for the given signal. A true
// signal always selects Visible. A false signal selects Hidden when
// declared, falls back to Initial, and otherwise reports Hidden.
func SelectState(v Variants, inView bool) State {
	if inView {
		return Visible
	}
	if _, ok := v[Hidden]; ok {
		return Hidden
	}
	if _, ok := v[Initial]; ok {
		return Initial
	}
	return Hidden
}

// Fade builds the common hidden/visible pair: fully transparent and offset
// by (x, y) when hidden, opaque and in place when visible.
func Fade(x, y float64, visible Transition) Variants {
	hidden := Props{Opacity: 0}
	shown := Props{Opacity: 1}
	if x != 0 {
		hidden[X], shown[X] = x, 0
	}
	if y != 0 {
		hidden[Y], shown[Y] = y, 0
	}
	return Variants{
		Hidden:  {Props: hidden},
		Visible: {Props: shown, Transition: visible},
	}
}

// Stagger builds a container pair that fades itself and staggers children.
func Stagger(step, delayChildren time.Duration) Variants {
	return Variants{
		Hidden: {Props: Props{Opacity: 0}},
		Visible: {
			Props:      Props{Opacity: 1},
			Transition: Transition{StaggerChildren: step, DelayChildren: delayChildren},
		},
	}
}

// Entrance builds an initial/visible pair with no hidden variant, for
// elements that start from their initial props and never animate out.
func Entrance(x, y float64, visible Transition) Variants {
	v := Fade(x, y, visible)
	v[Initial] = v[Hidden]
	delete(v, Hidden)
	return v
}
