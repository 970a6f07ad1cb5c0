package button

import "drawbot/hal"

// Code names a logical joystick action. A negative Code is the long-press
// form of the same action.
type Code int

// Codes match the board pin numbers of the joystick wiring, except Change,
// which is reported for the boot button on pin 0.
const (
	None   Code = 0
	Change Code = 1
	Down   Code = hal.PinDown
	Right  Code = hal.PinRight
	Center Code = hal.PinCenter
	Up     Code = hal.PinUp
	Left   Code = hal.PinLeft
	Enter  Code = hal.PinEnter
)

// Long returns the long-press form of c.
func (c Code) Long() Code {
	if c < 0 {
		return c
	}
	return -c
}

// IsLong reports whether c is a long press.
func (c Code) IsLong() bool { return c < 0 }

// Base strips the long-press sign.
func (c Code) Base() Code {
	if c < 0 {
		return -c
	}
	return c
}

func (c Code) String() string {
	name := "?"
	switch c.Base() {
	case None:
		return "none"
	case Change:
		name = "change"
	case Down:
		name = "down"
	case Right:
		name = "right"
	case Center:
		name = "center"
	case Up:
		name = "up"
	case Left:
		name = "left"
	case Enter:
		name = "enter"
	}
	if c.IsLong() {
		return "long-" + name
	}
	return name
}
