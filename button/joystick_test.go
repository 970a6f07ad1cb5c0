package button

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawbot/hal"
)

func newTestJoyStick(clk *fakeClock, pins map[Code]*hal.VirtualPin, order []Code) *JoyStick {
	var bindings []Binding
	for _, c := range order {
		bindings = append(bindings, Binding{Code: c, Button: New(pins[c], WithClock(clk.Now))})
	}
	return NewJoyStick(bindings, WithTimer(clk.Now, clk.Sleep))
}

func TestJoyStickTimeout(t *testing.T) {
	clk := newClock()
	pins := map[Code]*hal.VirtualPin{Up: newPin(false)}
	js := newTestJoyStick(clk, pins, []Code{Up})

	start := clk.Now()
	assert.Equal(t, None, js.Read(500*time.Millisecond))
	assert.GreaterOrEqual(t, clk.Now().Sub(start), 500*time.Millisecond)
}

func TestJoyStickShortAndLong(t *testing.T) {
	clk := newClock()
	pins := map[Code]*hal.VirtualPin{Up: newPin(false), Down: newPin(false)}
	js := newTestJoyStick(clk, pins, []Code{Up, Down})

	pins[Down].Drive(true)
	assert.Equal(t, Down, js.Read(0))
	assert.Equal(t, Down.Long(), js.Read(0))

	pins[Down].Drive(false)
	assert.Equal(t, None, js.Read(time.Second))
}

func TestJoyStickFixedOrder(t *testing.T) {
	clk := newClock()
	pins := map[Code]*hal.VirtualPin{Up: newPin(false), Down: newPin(false)}
	js := newTestJoyStick(clk, pins, []Code{Up, Down})

	pins[Up].Drive(true)
	pins[Down].Drive(true)
	assert.Equal(t, Up, js.Read(0))
	assert.Equal(t, Down, js.Read(0))
}

type testGPIO struct{ pins map[int]hal.GPIOPin }

func (g testGPIO) PinCount() int { return hal.PinCount }
func (g testGPIO) Pin(id int) hal.GPIOPin {
	if p, ok := g.pins[id]; ok {
		return p
	}
	return nil
}

func TestDefaultBindings(t *testing.T) {
	clk := newClock()
	gpio := testGPIO{pins: map[int]hal.GPIOPin{}}
	raw := map[int]*hal.VirtualPin{}
	for _, id := range []int{hal.PinUp, hal.PinDown, hal.PinLeft, hal.PinRight, hal.PinCenter, hal.PinZero, hal.PinEnter} {
		p := newPin(hal.ActiveLow(id))
		raw[id] = p
		gpio.pins[id] = p
	}

	bindings := DefaultBindings(gpio, WithClock(clk.Now))
	require.Len(t, bindings, 7)
	js := NewJoyStick(bindings, WithTimer(clk.Now, clk.Sleep))

	raw[hal.PinZero].Drive(false)
	assert.Equal(t, Change, js.Read(0))
	assert.Equal(t, None, js.Read(2*time.Second), "change has no long press")
	raw[hal.PinZero].Drive(true)

	raw[hal.PinEnter].Drive(false)
	assert.Equal(t, Enter, js.Read(0))
	assert.Equal(t, Enter.Long(), js.Read(0))
}

func TestDefaultBindingsSkipsUnwiredPins(t *testing.T) {
	gpio := testGPIO{pins: map[int]hal.GPIOPin{hal.PinUp: newPin(false)}}
	bindings := DefaultBindings(gpio)
	require.Len(t, bindings, 1)
	assert.Equal(t, Up, bindings[0].Code)
}
