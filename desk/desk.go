// Package desk composes the notebook: it owns the event queue, the scene and
// the animation driver, and runs them once per frame.
package desk

import (
	"context"
	"fmt"
	"image"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/matt-g-everett/flipbook/anim"
	"github.com/matt-g-everett/flipbook/scene"
	"github.com/matt-g-everett/flipbook/util"
)

// Status describes what the desk is animating.
type Status struct {
	Active        bool    `json:"active"`
	Animation     string  `json:"animation,omitempty"`
	ElapsedMs     int64   `json:"elapsedMs"`
	DurationMs    int64   `json:"durationMs"`
	Queued        int     `json:"queued"`
	RightRotation float64 `json:"rightRotation"`
}

// Desk is the notebook and everything that animates it.
type Desk struct {
	config Config
	ctx    context.Context

	mu     sync.Mutex
	queue  *anim.Queue
	driver *anim.Driver
	scene  *scene.Scene
	ease   util.EaseFunc
	button *Button
}

// New builds the scene once and wires the flip animations to the right page.
func New(ctx context.Context, config Config, rng *rand.Rand) (*Desk, error) {
	ease, err := util.Easing(config.Flip.Easing)
	if err != nil {
		return nil, fmt.Errorf("flip easing: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}

	d := new(Desk)
	d.config = config
	d.ease = ease
	d.queue = anim.NewQueue()
	d.ctx = anim.NewContext(ctx, d.queue)
	d.scene = scene.Compose(config.Page, config.Anchor(), rng)

	d.driver = anim.NewDriver(d.queue)
	d.driver.Handle(anim.ForwardFlip, func(elapsed, duration time.Duration) {
		d.scene.Right.SetRotationY(d.flipAngle(elapsed, duration))
	})
	d.driver.Handle(anim.BackwardFlip, func(elapsed, duration time.Duration) {
		d.scene.Right.SetRotationY(math.Pi - d.flipAngle(elapsed, duration))
	})

	d.button = NewButton(d.ctx, buttonBounds(config.Window.Width, config.Window.Height),
		time.Duration(config.Flip.DurationMs)*time.Millisecond)

	return d, nil
}

func buttonBounds(w, h int) image.Rectangle {
	const bw, bh, margin = 120, 32, 16
	x := (w - bw) / 2
	y := h - bh - margin
	return image.Rect(x, y, x+bw, y+bh)
}

func (d *Desk) flipAngle(elapsed, duration time.Duration) float64 {
	p := anim.Progress(elapsed, duration)
	if p < 1 {
		p = d.ease(p)
	}
	return scene.FlipAngle(p)
}

// Context carries the desk's queue; see anim.FromContext.
func (d *Desk) Context() context.Context {
	return d.ctx
}

// Config returns the configuration the desk was built with.
func (d *Desk) Config() Config {
	return d.config
}

// Scene returns the notebook scene. Callers must not mutate it.
func (d *Desk) Scene() *scene.Scene {
	return d.scene
}

// Button returns the flip button.
func (d *Desk) Button() *Button {
	return d.button
}

// Step runs one frame of the animation driver.
func (d *Desk) Step(now time.Time) {
	d.mu.Lock()
	d.driver.Frame(now)
	d.mu.Unlock()
}

// Status reports the active event and the queue depth.
func (d *Desk) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := Status{Queued: d.queue.Len()}
	if len(d.scene.Right.Meshes) > 0 {
		st.RightRotation = d.scene.Right.Meshes[0].Rotation.Y
	}
	if e := d.driver.Current(); e != nil {
		st.Active = true
		st.Animation = e.Type.String()
		st.ElapsedMs = e.Elapsed.Milliseconds()
		st.DurationMs = e.Duration.Milliseconds()
	}
	return st
}
