package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int
}

// DefaultHz is the frame cadence of both runners.
const DefaultHz = 30

// RunHeadless runs the app on a ticker without opening a window. It returns nil after
// cfg.Ticks steps (0 = run until ctx is done) or when a step returns ErrQuit.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	return runHeadless(ctx, newHost(cfg.Width, cfg.Height, os.Stdout), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = DefaultHz
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
