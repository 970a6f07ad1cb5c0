package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIO provides access to general-purpose IO pins.
//
// Pin ids are the board's pin numbers. Implementations may return nil for
// pins that are not wired.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// checkConfig reports whether a pin with caps can take mode and pull.
func checkConfig(name string, caps GPIOCaps, mode GPIOMode, pull GPIOPull) error {
	var need GPIOCaps
	switch mode {
	case GPIOModeInput:
		need = GPIOCapInput
	case GPIOModeOutput:
		need = GPIOCapOutput
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode %d", name, mode)
	}
	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		need |= GPIOCapPullUp
	case GPIOPullDown:
		need |= GPIOCapPullDown
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull %d", name, pull)
	}
	if missing := need &^ caps; missing != 0 {
		return fmt.Errorf("gpio: pin %s: unsupported %s", name, missing)
	}
	return nil
}

func (c GPIOCaps) String() string {
	var s string
	for _, f := range []struct {
		cap  GPIOCaps
		name string
	}{
		{GPIOCapInput, "input"},
		{GPIOCapOutput, "output"},
		{GPIOCapPullUp, "pull-up"},
		{GPIOCapPullDown, "pull-down"},
	} {
		if c&f.cap != 0 {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// pinTable is a GPIO over a sparse slice indexed by pin number.
type pinTable []GPIOPin

func newPinTable(pins []GPIOPin) GPIO {
	return pinTable(pins)
}

func (t pinTable) PinCount() int { return len(t) }

func (t pinTable) Pin(id int) GPIOPin {
	if id < 0 || id >= len(t) {
		return nil
	}
	return t[id]
}

// VirtualPin is an in-memory pin. Its input level is set with Drive, which is
// how the host keyboard and tests stand in for a physical switch.
type VirtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	level bool
}

// NewVirtualPin returns an input pin idling at level.
func NewVirtualPin(name string, caps GPIOCaps, level bool) *VirtualPin {
	return &VirtualPin{name: name, caps: caps, level: level}
}

func (p *VirtualPin) Name() string   { return p.name }
func (p *VirtualPin) Caps() GPIOCaps { return p.caps }

func (p *VirtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, p.caps, mode, pull); err != nil {
		return err
	}
	p.mu.Lock()
	p.mode = mode
	p.mu.Unlock()
	return nil
}

func (p *VirtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *VirtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// Drive sets the level seen by Read regardless of mode.
func (p *VirtualPin) Drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// ledPin exposes the backlight LED as an output-only pin.
type ledPin struct {
	mu    sync.Mutex
	led   LED
	name  string
	level bool
}

func newLEDPin(name string, led LED) GPIOPin {
	if led == nil {
		return nil
	}
	return &ledPin{led: led, name: name}
}

func (p *ledPin) Name() string   { return p.name }
func (p *ledPin) Caps() GPIOCaps { return GPIOCapOutput }

func (p *ledPin) Configure(mode GPIOMode, pull GPIOPull) error {
	return checkConfig(p.name, GPIOCapOutput, mode, pull)
}

func (p *ledPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *ledPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	if level {
		p.led.High()
	} else {
		p.led.Low()
	}
	return nil
}
