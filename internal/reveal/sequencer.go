package reveal

import "time"

// Node is one animated element in a declarative subtree.
type Node struct {
	Name     string
	Variants Variants
	Children []*Node
}

// Append adds children in declaration order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Name: n.Name, Variants: n.Variants.Clone()}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, 0, len(n.Children))
		for _, c := range n.Children {
			if c != nil {
				out.Children = append(out.Children, c.clone())
			}
		}
	}
	return out
}

// Frame is the resolved state of a node: the selected variant's props and
// its transition with the effective delay.
type Frame struct {
	Name       string
	State      State
	Props      Props
	Transition Transition
	Children   []Frame
}

// Find returns the first frame named name in depth-first order.
func (f Frame) Find(name string) (Frame, bool) {
	var (
		found Frame
		ok    bool
	)
	f.Walk(func(fr Frame) bool {
		if fr.Name == name {
			found, ok = fr, true
			return false
		}
		return true
	})
	return found, ok
}

// Walk visits f and its descendants depth-first until fn returns false.
func (f Frame) Walk(fn func(Frame) bool) {
	f.walk(fn)
}

func (f Frame) walk(fn func(Frame) bool) bool {
	if !fn(f) {
		return false
	}
	for _, c := range f.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// Sequencer resolves an immutable node tree against the inView signal.
type Sequencer struct {
	root *Node
}

// NewSequencer copies root; later changes to root do not affect the
// sequencer.
func NewSequencer(root *Node) *Sequencer {
	if root == nil {
		root = &Node{}
	}
	return &Sequencer{root: root.clone()}
}

// Resolve computes the frame tree for the given signal.
func (s *Sequencer) Resolve(inView bool) Frame {
	return resolve(s.root, inView, 0)
}

// Frames resolves and indexes every named frame.
func (s *Sequencer) Frames(inView bool) map[string]Frame {
	out := make(map[string]Frame)
	s.Resolve(inView).Walk(func(f Frame) bool {
		if f.Name != "" {
			out[f.Name] = f
		}
		return true
	})
	return out
}

// resolve applies the variant for n. offset is the start time inherited
// from ancestors; it shifts the node's own delay and everything below it.
func resolve(n *Node, inView bool, offset time.Duration) Frame {
	state := SelectState(n.Variants, inView)
	v := n.Variants[state]

	tr := v.Transition
	tr.Delay += offset
	f := Frame{
		Name:       n.Name,
		State:      state,
		Props:      v.Props.Clone(),
		Transition: tr,
	}

	base := offset + v.Transition.DelayChildren
	step := v.Transition.StaggerChildren
	if len(n.Children) > 0 {
		f.Children = make([]Frame, len(n.Children))
		for i, c := range n.Children {
			f.Children[i] = resolve(c, inView, base+time.Duration(i)*step)
		}
	}
	return f
}
