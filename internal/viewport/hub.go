// Package viewport routes intersection reports from the browser to the
// oracles watching each mounted element.
package viewport

import (
	"errors"
	"fmt"
	"sync"

	"github.com/18gaurav2021/portfolio/internal/reveal"
)

// ErrUnmounted is returned when observing a target that was never mounted
// or has since been unmounted.
var ErrUnmounted = errors.New("viewport: target not mounted")

// Hub is an in-memory reveal.Observer. One hub serves one visitor session.
type Hub struct {
	mu      sync.Mutex
	nextID  uint64
	targets map[string]map[uint64]func(reveal.Intersection)
}

var _ reveal.Observer = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{targets: make(map[string]map[uint64]func(reveal.Intersection))}
}

// Mount registers targets so they can be observed. Mounting twice is a
// no-op.
func (h *Hub) Mount(targets ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range targets {
		if _, ok := h.targets[t]; !ok {
			h.targets[t] = make(map[uint64]func(reveal.Intersection))
		}
	}
}

// Unmount drops target and all of its subscribers.
func (h *Hub) Unmount(target string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.targets, target)
}

func (h *Hub) Mounted(target string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.targets[target]
	return ok
}

// Observe implements reveal.Observer.
func (h *Hub) Observe(target string, fn func(reveal.Intersection)) (func(), error) {
	if fn == nil {
		return nil, fmt.Errorf("viewport: observe %q: nil callback", target)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.targets[target]
	if !ok {
		return nil, fmt.Errorf("observe %q: %w", target, ErrUnmounted)
	}
	h.nextID++
	id := h.nextID
	subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.targets[target]; ok {
			delete(subs, id)
		}
	}, nil
}

// Subscribers returns the number of live subscriptions on target.
func (h *Hub) Subscribers(target string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.targets[target])
}

// Dispatch delivers in to every subscriber of target and reports how many
// were called. Reports for unmounted targets are dropped. Callbacks run
// outside the hub lock so they may cancel their own subscription.
func (h *Hub) Dispatch(target string, in reveal.Intersection) int {
	h.mu.Lock()
	subs := h.targets[target]
	fns := make([]func(reveal.Intersection), 0, len(subs))
	for _, fn := range subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(in)
	}
	return len(fns)
}
