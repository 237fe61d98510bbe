package countdown

import (
	"sync"
	"time"

	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/pubsub"
)

// Controller runs a single countdown: it parses the target, renders it
// immediately and then on every tick, and owns the one recurring tick
// registration.
//
// A countdown started toward a future target stops once it reaches zero and
// keeps the zero rendering. A countdown started on a past target never
// stops; it keeps counting "days ago" upward.
type Controller struct {
	mu        sync.Mutex
	display   Display
	scheduler Scheduler
	formatter *Formatter
	clock     Clock
	period    time.Duration
	events    pubsub.Publisher[Event]

	state   State
	target  time.Time
	forward bool
	handle  Handle
	gen     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithPeriod overrides the tick period.
func WithPeriod(period time.Duration) Option {
	return func(c *Controller) { c.period = period }
}

// WithPublisher publishes Started, Stopped and Reset events to p.
func WithPublisher(p pubsub.Publisher[Event]) Option {
	return func(c *Controller) { c.events = p }
}

// NewController creates an idle controller rendering onto display.
func NewController(display Display, scheduler Scheduler, formatter *Formatter, opts ...Option) *Controller {
	c := &Controller{
		display:   display,
		scheduler: scheduler,
		formatter: formatter,
		clock:     RealClock{},
		period:    TickPeriod,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.formatter == nil {
		c.formatter = NewFormatter(DefaultLocale(), nil)
	}
	return c
}

// Start begins counting toward dateStr/timeStr, replacing any running
// countdown. If the date is missing or invalid it alerts, returns the parse
// error and leaves the current countdown untouched.
func (c *Controller) Start(dateStr, timeStr string) error {
	c.mu.Lock()
	loc := c.formatter.Location()
	c.mu.Unlock()

	target, err := ParseTarget(dateStr, timeStr, loc)
	if err != nil {
		log.Warn(log.CatCountdown, "start rejected", "date", dateStr, "time", timeStr, "error", err)
		c.display.Alert(AlertNoDate)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	gen := c.gen
	c.target = target
	c.display.SetVisible(ElementResults, true)

	delta := ComputeDelta(target, c.clock.Now())
	c.forward = !delta.IsPast

	// A start exactly on the target still ticks once; that tick stops it.
	c.renderLocked(delta)
	c.state = StateRunning
	c.handle = c.scheduler.Every(c.period, func() { c.tick(gen) })

	log.Info(log.CatCountdown, "countdown started", "target", target.Format(time.RFC3339), "past", delta.IsPast)
	c.publishLocked(EventStarted, delta)
	return nil
}

// Reset stops any countdown and restores the baseline rendering.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.gen++
	c.state = StateIdle
	c.target = time.Time{}
	c.forward = false

	c.display.SetVisible(ElementResults, false)
	Baseline().Apply(c.display)

	log.Debug(log.CatCountdown, "countdown reset")
	c.publishLocked(EventReset, Delta{})
}

// SetFormatter swaps the formatter and re-renders a running countdown.
func (c *Controller) SetFormatter(f *Formatter) {
	if f == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.formatter = f
	if c.state == StateRunning {
		c.renderLocked(ComputeDelta(c.target, c.clock.Now()))
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Target returns the active target instant, or the zero time after a reset.
func (c *Controller) Target() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// tick is the recurring callback. Ticks from a superseded registration are ignored.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state != StateRunning {
		return
	}

	delta := ComputeDelta(c.target, c.clock.Now())
	if c.forward && delta.Reached() {
		c.finishLocked()
		return
	}
	c.renderLocked(delta)
}

// finishLocked renders a forward countdown at zero and stops ticking.
func (c *Controller) finishLocked() {
	c.renderLocked(Delta{})
	c.stopLocked()
	c.state = StateIdle

	log.Info(log.CatCountdown, "countdown reached zero", "target", c.target.Format(time.RFC3339))
	c.publishLocked(EventStopped, Delta{})
}

func (c *Controller) renderLocked(delta Delta) {
	c.formatter.Format(delta, c.target).Apply(c.display)
}

func (c *Controller) stopLocked() {
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
}

func (c *Controller) publishLocked(t pubsub.EventType, delta Delta) {
	if c.events == nil {
		return
	}
	c.events.Publish(t, Event{State: c.state, Target: c.target, Delta: delta})
}
