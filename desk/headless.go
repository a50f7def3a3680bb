package desk

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/matt-g-everett/flipbook/scene"
)

// A Submitter receives every frame once the driver has stepped.
type Submitter interface {
	Submit(s *scene.Scene) error
}

// RunHeadless steps the desk from a ticker and submits each frame to every sink.
// It returns nil after cfg.Frames frames, or ctx.Err() when cancelled.
func RunHeadless(ctx context.Context, d *Desk, cfg HeadlessConfig, sinks ...Submitter) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	interval := time.Second / time.Duration(cfg.Hz)
	if interval <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	for i := 0; i < cfg.Presses; i++ {
		d.Button().Press()
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			d.Step(now)
			for _, s := range sinks {
				if err := s.Submit(d.Scene()); err != nil {
					return fmt.Errorf("submit frame %d: %w", frames, err)
				}
			}
			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				log.Printf("Rendered %d frames", frames)
				return nil
			}
		}
	}
}
