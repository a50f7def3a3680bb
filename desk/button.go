package desk

import (
	"context"
	"image"
	"time"

	"github.com/matt-g-everett/flipbook/anim"
)

// Button is the single input of the notebook. Each press queues one forward flip.
type Button struct {
	Label  string
	Bounds image.Rectangle

	queue    anim.Pusher
	duration time.Duration
}

// NewButton creates a Button that pushes onto the queue provided by ctx.
// It panics with anim.ErrNoQueue when ctx does not come from a Desk.
func NewButton(ctx context.Context, bounds image.Rectangle, duration time.Duration) *Button {
	b := new(Button)
	b.Label = "Flip page"
	b.Bounds = bounds
	b.queue = anim.MustFromContext(ctx)
	b.duration = duration
	return b
}

// Press queues a forward flip.
func (b *Button) Press() {
	b.queue.Push(anim.NewEvent(anim.ForwardFlip, b.duration))
}

// Contains reports whether a screen point falls on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Bounds)
}
