//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Script lists board pins to press, one per Hold period, in order.
	Script []int
	Hold   time.Duration
}

// RunHeadless runs the app without opening a window. Scripted presses stand
// in for the keyboard.
func RunHeadless(ctx context.Context, h HAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hold <= 0 {
		cfg.Hold = 150 * time.Millisecond
	}

	host, ok := h.(*hostHAL)
	if !ok {
		return errors.New("headless mode requires the host HAL")
	}
	step := newApp(host)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	sc := newPressScript(cfg.Script, cfg.Hold)

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			sc.step(host, now)
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

// pressScript holds each pin down for hold, then releases it for hold.
type pressScript struct {
	pins  []int
	hold  time.Duration
	next  int
	down  bool
	since time.Time
}

func newPressScript(pins []int, hold time.Duration) *pressScript {
	return &pressScript{pins: pins, hold: hold}
}

func (s *pressScript) step(h *hostHAL, now time.Time) {
	if s.next >= len(s.pins) {
		return
	}
	if s.since.IsZero() {
		s.since = now
		return
	}
	if now.Sub(s.since) < s.hold {
		return
	}
	s.since = now
	pin := s.pins[s.next]
	if !s.down {
		h.press(pin, true)
		s.down = true
		return
	}
	h.press(pin, false)
	s.down = false
	s.next++
}
