package hal

// Board pin numbers for the five-way joystick and the two on-board buttons.
// They are the external wiring contract; button codes reuse the same values.
const (
	PinZero      = 0 // boot button, active low
	PinBacklight = 4
	PinDown      = 25
	PinRight     = 26
	PinCenter    = 27
	PinUp        = 32
	PinLeft      = 33
	PinEnter     = 35 // input only, active low

	PinCount = 40
)

// Panel geometry after rotation into landscape.
const (
	DisplayWidth  = 240
	DisplayHeight = 135
)

// ActiveLow reports whether a board button pin reads low when pressed.
func ActiveLow(pin int) bool {
	return pin == PinZero || pin == PinEnter
}
