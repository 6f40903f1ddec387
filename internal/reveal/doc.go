// Package reveal models scroll-triggered entrance animations.
//
// An Oracle turns intersection reports for one mounted element into a
// boolean inView signal. A Sequencer maps that signal onto a declarative
// tree of animation variants and produces a Frame: the visual properties
// and effective transition timing for every node in the tree.
//
// Both halves are independent of any rendering surface. The Observer
// interface is the only point of contact with the viewport, and Frames
// render themselves to inline CSS for HTML templates.
package reveal
