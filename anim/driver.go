package anim

import "time"

// A Handler maps the active event's elapsed time onto a visual transform.
type Handler func(elapsed, duration time.Duration)

// Driver advances at most one event at a time from a queue.
type Driver struct {
	queue    Popper
	handlers map[AnimationType]Handler
	current  *Event
	clock    Clock
}

// NewDriver creates a Driver that pulls events from queue.
func NewDriver(queue Popper) *Driver {
	d := new(Driver)
	d.queue = queue
	d.handlers = make(map[AnimationType]Handler)
	return d
}

// Handle registers the transform for an animation type. Types without a handler are no-ops.
func (d *Driver) Handle(t AnimationType, h Handler) {
	d.handlers[t] = h
}

// Current returns the active event, or nil when idle.
func (d *Driver) Current() *Event {
	return d.current
}

// Active reports whether an event is being advanced.
func (d *Driver) Active() bool {
	return d.current != nil
}

// Frame advances the driver by the wall time since the previous frame.
func (d *Driver) Frame(now time.Time) {
	d.Tick(d.clock.Advance(now))
}

// Tick advances the active event by delta, dequeuing the next one when idle.
func (d *Driver) Tick(delta time.Duration) {
	if d.current == nil {
		e, ok := d.queue.Pop()
		if !ok {
			return
		}
		e.Elapsed = 0
		d.current = e
	}

	e := d.current
	e.Elapsed += delta
	if e.Elapsed > e.Duration {
		e.Elapsed = e.Duration
	}

	if h, ok := d.handlers[e.Type]; ok && h != nil {
		h(e.Elapsed, e.Duration)
	}

	if e.Done() {
		d.current = nil
	}
}
