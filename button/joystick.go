package button

import (
	"time"

	"drawbot/hal"
)

// Binding pairs a code with the button that produces it.
type Binding struct {
	Code   Code
	Button *Button
}

// JoyStick polls its bindings in order and reports the first event.
// It exclusively owns the buttons it is given.
type JoyStick struct {
	bindings []Binding
	poll     time.Duration
	now      func() time.Time
	sleep    func(time.Duration)
}

// JoyStickOption configures a JoyStick.
type JoyStickOption func(*JoyStick)

// WithPollInterval sets the pause between polls. Zero spins.
func WithPollInterval(d time.Duration) JoyStickOption {
	return func(j *JoyStick) { j.poll = d }
}

// WithTimer replaces time.Now and time.Sleep.
func WithTimer(now func() time.Time, sleep func(time.Duration)) JoyStickOption {
	return func(j *JoyStick) {
		if now != nil {
			j.now = now
		}
		if sleep != nil {
			j.sleep = sleep
		}
	}
}

// NewJoyStick returns a JoyStick over bindings.
func NewJoyStick(bindings []Binding, opts ...JoyStickOption) *JoyStick {
	j := &JoyStick{
		bindings: bindings,
		poll:     time.Millisecond,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// DefaultBindings wires the board: the five joystick directions (active
// high), the boot button as Change without long press, and the Enter button.
// Both on-board buttons are active low. Unwired pins are skipped.
func DefaultBindings(gpio hal.GPIO, opts ...Option) []Binding {
	type wire struct {
		code  Code
		pin   int
		extra []Option
	}
	wiring := []wire{
		{Up, hal.PinUp, nil},
		{Down, hal.PinDown, nil},
		{Left, hal.PinLeft, nil},
		{Right, hal.PinRight, nil},
		{Center, hal.PinCenter, nil},
		{Change, hal.PinZero, []Option{WithLong(0), ActiveLow()}},
		{Enter, hal.PinEnter, []Option{ActiveLow()}},
	}

	var out []Binding
	for _, w := range wiring {
		pin := gpio.Pin(w.pin)
		if pin == nil {
			continue
		}
		all := append(append([]Option(nil), opts...), w.extra...)
		out = append(out, Binding{Code: w.code, Button: New(pin, all...)})
	}
	return out
}

// Read blocks until a binding reports an event and returns its code, negated
// for a long press. With a nonzero timeout it returns None once the timeout
// passes without an event.
func (j *JoyStick) Read(timeout time.Duration) Code {
	var start time.Time
	if timeout > 0 {
		start = j.now()
	}

	for {
		for _, b := range j.bindings {
			if r := b.Button.Read(); r != Released {
				return b.Code * Code(r)
			}
		}

		if timeout > 0 && j.now().Sub(start) > timeout {
			return None
		}
		if j.poll > 0 {
			j.sleep(j.poll)
		}
	}
}
