// Package button debounces board switches and aggregates the five-way
// joystick plus the two on-board buttons into directional codes.
package button

import (
	"time"

	"drawbot/hal"
)

// Read results.
const (
	Released    = 0
	Pressed     = 1
	LongPressed = -1
)

const (
	DefaultDebounce = 50 * time.Millisecond
	DefaultLong     = 600 * time.Millisecond
)

// Button debounces a single pin and reports presses and long presses.
//
// At most one Pressed and one LongPressed are reported per contiguous active
// interval. A signal that keeps bouncing never settles, so it never reports.
type Button struct {
	pin       hal.GPIOPin
	debounce  time.Duration
	long      time.Duration
	activeLow bool
	now       func() time.Time

	state      bool
	last       bool
	lastChange time.Time
	down       time.Time
	fired      bool
}

// Option configures a Button.
type Option func(*Button)

// WithDebounce sets the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(b *Button) { b.debounce = d }
}

// WithLong sets the long-press window. Zero disables long presses.
func WithLong(d time.Duration) Option {
	return func(b *Button) { b.long = d }
}

// ActiveLow marks a switch that pulls the pin low when pressed.
func ActiveLow() Option {
	return func(b *Button) { b.activeLow = true }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Button) {
		if now != nil {
			b.now = now
		}
	}
}

// New returns a debounced button on pin.
func New(pin hal.GPIOPin, opts ...Option) *Button {
	b := &Button{
		pin:      pin,
		debounce: DefaultDebounce,
		long:     DefaultLong,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if pin != nil {
		pull := hal.GPIOPullNone
		if b.activeLow && pin.Caps()&hal.GPIOCapPullUp != 0 {
			pull = hal.GPIOPullUp
		}
		_ = pin.Configure(hal.GPIOModeInput, pull)
	}
	return b
}

// Modify changes the debounce or long-press window. Nil leaves a value as is.
func (b *Button) Modify(debounce, long *time.Duration) {
	if debounce != nil {
		b.debounce = *debounce
	}
	if long != nil {
		b.long = *long
	}
}

// Read samples the pin once. It returns Pressed when a press settles,
// LongPressed once when a held press crosses the long window, and Released
// otherwise.
func (b *Button) Read() int {
	value := b.sample()
	now := b.now()

	if value != b.last {
		b.lastChange = now
	}
	b.last = value

	if now.Sub(b.lastChange) <= b.debounce {
		return Released
	}

	if value != b.state {
		b.state = value
		b.fired = false
		if value {
			b.down = now
			return Pressed
		}
	}

	if b.long > 0 && b.state && !b.fired && now.Sub(b.down) > b.long {
		b.fired = true
		return LongPressed
	}
	return Released
}

// Active reports the debounced state.
func (b *Button) Active() bool { return b.state }

func (b *Button) sample() bool {
	if b.pin == nil {
		return false
	}
	level, err := b.pin.Read()
	if err != nil {
		return false
	}
	return level != b.activeLow
}
