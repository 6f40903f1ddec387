// Package contact implements the contact form: three text fields and a
// transient "submitted" acknowledgement that resets itself after a fixed
// delay.
//
// By default nothing is transmitted; see Acknowledger. A Mailer can be
// plugged in through WithDelivery.
package contact

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// ResetAfter is how long a submission stays acknowledged.
const ResetAfter = 3000 * time.Millisecond

// State of the acknowledgement. Submitting happens synchronously inside
// Submit and is never observed.
type State int

const (
	Idle State = iota
	Acknowledged
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Acknowledged:
		return "acknowledged"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is a consistent view of the controller.
type Snapshot struct {
	Form      Form
	Submitted bool
	ResetAt   time.Time
	// Rev counts successful submits. Edits tagged with an older Rev were
	// made to a form that has been cleared.
	Rev uint64
}

func (s Snapshot) State() State {
	if s.Submitted {
		return Acknowledged
	}
	return Idle
}

// Remaining returns the time left before the acknowledgement resets, or
// zero when idle.
func (s Snapshot) Remaining(now time.Time) time.Duration {
	if !s.Submitted || !now.Before(s.ResetAt) {
		return 0
	}
	return s.ResetAt.Sub(now)
}

// Option configures a Controller.
type Option func(*Controller)

func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithDelivery(d Delivery) Option {
	return func(c *Controller) { c.delivery = d }
}

func WithResetAfter(d time.Duration) Option {
	return func(c *Controller) { c.resetAfter = d }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.log = logger }
}

// Controller owns one visitor's form state and submitted flag. The two are
// independent: clearing the form never touches the flag, and the reset
// timer never touches the form.
type Controller struct {
	clock      clockwork.Clock
	delivery   Delivery
	resetAfter time.Duration
	log        zerolog.Logger

	mu        sync.Mutex
	form      Form
	submitted bool
	resetAt   time.Time
	timer     clockwork.Timer
	// generation identifies the live reset timer; a callback carrying an
	// older generation was superseded and must not clear the flag.
	generation uint64
	rev        uint64
	closed     bool
}

func New(opts ...Option) *Controller {
	c := &Controller{
		clock:      clockwork.NewRealClock(),
		delivery:   Acknowledger{},
		resetAfter: ResetAfter,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update records an edit to one field.
func (c *Controller) Update(field Field, value string) error {
	return c.update(field, value, func() bool { return true })
}

// UpdateAt records an edit made while the form was at rev. It returns
// ErrStale and leaves the form alone once a later submit cleared it.
func (c *Controller) UpdateAt(rev uint64, field Field, value string) error {
	return c.update(field, value, func() bool { return rev == c.rev })
}

func (c *Controller) update(field Field, value string, current func() bool) error {
	if _, err := ParseField(string(field)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if !current() {
		return ErrStale
	}
	c.form.set(field, value)
	return nil
}

// Submit acknowledges f. It requires every field to be non-empty, hands
// the form to the configured Delivery, then sets the flag, arms the reset
// timer (superseding any earlier one) and clears the form.
func (c *Controller) Submit(ctx context.Context, f Form) (Snapshot, error) {
	if err := f.Validate(); err != nil {
		return c.Snapshot(), err
	}
	if c.isClosed() {
		return c.Snapshot(), ErrClosed
	}
	if err := c.delivery.Deliver(ctx, f); err != nil {
		c.log.Warn().Err(err).Msg("contact delivery failed")
		return c.Snapshot(), fmt.Errorf("contact: deliver: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return c.snapshotLocked(), ErrClosed
	}

	c.submitted = true

	if c.timer != nil {
		c.timer.Stop()
	}
	c.generation++
	gen := c.generation
	c.resetAt = c.clock.Now().Add(c.resetAfter)
	c.timer = c.clock.AfterFunc(c.resetAfter, func() { c.expire(gen) })

	c.form = Form{}
	c.rev++

	c.log.Debug().Uint64("generation", gen).Time("reset_at", c.resetAt).Msg("contact acknowledged")
	return c.snapshotLocked(), nil
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.closed {
		return
	}
	c.submitted = false
	c.resetAt = time.Time{}
	c.timer = nil
	c.log.Debug().Uint64("generation", gen).Msg("contact acknowledgement reset")
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{Form: c.form, Submitted: c.submitted, ResetAt: c.resetAt, Rev: c.rev}
}

// Now reports the controller's clock.
func (c *Controller) Now() time.Time {
	return c.clock.Now()
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close stops any pending reset. The last state is kept.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
