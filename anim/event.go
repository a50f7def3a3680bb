package anim

import "time"

// AnimationType selects the transform an Event drives.
type AnimationType int

const (
	ForwardFlip AnimationType = iota
	BackwardFlip
)

func (t AnimationType) String() string {
	switch t {
	case ForwardFlip:
		return "ForwardFlip"
	case BackwardFlip:
		return "BackwardFlip"
	default:
		return "Unknown"
	}
}

// An Event is a timed request to run one animation for a fixed duration.
type Event struct {
	Type     AnimationType
	Duration time.Duration
	Elapsed  time.Duration
}

// NewEvent creates an Event that has not started yet.
func NewEvent(t AnimationType, duration time.Duration) *Event {
	e := new(Event)
	e.Type = t
	e.Duration = duration
	e.Elapsed = 0
	return e
}

// Done reports whether the event has consumed its whole duration.
func (e *Event) Done() bool {
	return e.Elapsed >= e.Duration
}

// Progress maps elapsed time onto [0, 1]. A non-positive duration is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1.0
	}
	p := float64(elapsed) / float64(duration)
	if p > 1.0 {
		return 1.0
	}
	if p < 0 {
		return 0
	}
	return p
}
