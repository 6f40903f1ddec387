package reveal

import (
	"slices"
	"sync"
)

// Options configures an Oracle.
type Options struct {
	// Threshold is the visible fraction, in [0,1], at which the element
	// counts as in view.
	Threshold float64
	// TriggerOnce latches the signal after it first becomes true.
	TriggerOnce bool
}

func (o Options) normalized() Options {
	switch {
	case o.Threshold < 0:
		o.Threshold = 0
	case o.Threshold > 1:
		o.Threshold = 1
	}
	return o
}

// Intersection is one report from the viewport about an element.
type Intersection struct {
	Ratio        float64
	Intersecting bool
}

// Observer is the viewport side of the contract. Observe subscribes fn to
// reports for target and returns the function that releases the
// subscription. It fails when target is not mounted.
type Observer interface {
	Observe(target string, fn func(Intersection)) (cancel func(), err error)
}

// Oracle holds the inView signal for one element.
type Oracle struct {
	mu        sync.Mutex
	opts      Options
	inView    bool
	latched   bool
	cancel    func()
	detached  bool
	listeners []func(bool)
}

// Watch subscribes to target through obs. If the target cannot be
// observed the oracle is detached and its signal stays false.
func Watch(obs Observer, target string, opts Options) *Oracle {
	o := &Oracle{opts: opts.normalized()}
	if obs == nil || target == "" {
		o.detached = true
		return o
	}
	cancel, err := obs.Observe(target, o.report)
	if err != nil {
		o.detached = true
		return o
	}

	o.mu.Lock()
	if o.detached {
		// Latched during Observe; release now that cancel is known.
		o.mu.Unlock()
		cancel()
		return o
	}
	o.cancel = cancel
	o.mu.Unlock()
	return o
}

// InView reports the current signal.
func (o *Oracle) InView() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inView
}

// Options returns the normalized configuration.
func (o *Oracle) Options() Options {
	return o.opts
}

// Detached reports whether the oracle has stopped receiving reports. A
// latched oracle is detached too.
func (o *Oracle) Detached() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detached
}

// OnChange registers fn to run after every transition of the signal.
func (o *Oracle) OnChange(fn func(bool)) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

// Close releases the subscription. The last signal value is kept.
func (o *Oracle) Close() {
	o.mu.Lock()
	cancel := o.release()
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// release marks the oracle detached and hands back the cancel func for
// the caller to run outside the lock.
func (o *Oracle) release() func() {
	o.detached = true
	cancel := o.cancel
	o.cancel = nil
	return cancel
}

func (o *Oracle) report(in Intersection) {
	o.mu.Lock()
	if o.detached || o.latched {
		o.mu.Unlock()
		return
	}

	next := in.Intersecting && in.Ratio >= o.opts.Threshold
	if next == o.inView {
		o.mu.Unlock()
		return
	}
	o.inView = next

	var cancel func()
	if next && o.opts.TriggerOnce {
		o.latched = true
		cancel = o.release()
	}
	listeners := slices.Clone(o.listeners)
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, fn := range listeners {
		fn(next)
	}
}
