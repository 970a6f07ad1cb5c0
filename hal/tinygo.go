//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	fb     Framebuffer
	flash  Flash
}

// New returns the HAL for an ESP32 board with a 135x240 ST7789 panel and a
// five-way joystick.
//
// UART: UART0 at 115200 8N1. SPI: SCK 18, SDO 19; panel RST 23, CS 5, DC 16,
// backlight 4.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	blPin := machine.Pin(PinBacklight)
	blPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: blPin}

	pins := make([]GPIOPin, PinCount)
	for _, id := range []int{PinUp, PinDown, PinLeft, PinRight, PinCenter} {
		pins[id] = newMachinePin(id, GPIOCapInput|GPIOCapPullUp|GPIOCapPullDown)
	}
	pins[PinZero] = newMachinePin(PinZero, GPIOCapInput|GPIOCapPullUp)
	pins[PinEnter] = newMachinePin(PinEnter, GPIOCapInput)
	pins[PinBacklight] = newLEDPin("BL", led)

	logger := &uartLogger{uart: uart}
	var fb Framebuffer
	if panel, err := newPanelFramebuffer(); err == nil {
		fb = panel
	} else {
		logger.WriteLineString("hal: panel: " + err.Error())
		fb = newRAMFramebuffer(DisplayWidth, DisplayHeight)
	}

	return &tinyGoHAL{
		logger: logger,
		led:    led,
		gpio:   newPinTable(pins),
		fb:     fb,
		flash:  newDeviceFlash(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Backlight() LED   { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Flash() Flash     { return h.flash }

// panelFramebuffer keeps the frame in RAM and pushes it to the panel on
// Present, a band of rows at a time.
type panelFramebuffer struct {
	dev    st7789.Device
	width  int
	height int
	buf    []byte
	txBuf  []byte
}

const panelBandRows = 8

func newPanelFramebuffer() (*panelFramebuffer, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.Pin(18),
		SDO:       machine.Pin(19),
		Frequency: 30_000_000,
		Mode:      3,
	}); err != nil {
		return nil, err
	}

	dev := st7789.New(spi, machine.Pin(23), machine.Pin(16), machine.Pin(5), machine.Pin(PinBacklight))
	dev.Configure(st7789.Config{
		Width:        135,
		Height:       240,
		Rotation:     drivers.Rotation270,
		RowOffset:    40,
		ColumnOffset: 52,
	})

	return &panelFramebuffer{
		dev:    dev,
		width:  DisplayWidth,
		height: DisplayHeight,
		buf:    make([]byte, DisplayWidth*DisplayHeight*2),
		txBuf:  make([]byte, DisplayWidth*panelBandRows*2),
	}, nil
}

func (f *panelFramebuffer) Width() int          { return f.width }
func (f *panelFramebuffer) Height() int         { return f.height }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.width * 2 }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) ClearRGB(r, g, b uint8) {
	fill565(f.buf, rgb565(r, g, b))
}

func (f *panelFramebuffer) Present() error {
	stride := f.width * 2
	for y := 0; y < f.height; y += panelBandRows {
		rows := panelBandRows
		if y+rows > f.height {
			rows = f.height - y
		}
		src := f.buf[y*stride : (y+rows)*stride]
		dst := f.txBuf[:len(src)]
		for i := 0; i+1 < len(src); i += 2 {
			// Framebuffer is little-endian RGB565; the panel wants big-endian.
			dst[i] = src[i+1]
			dst[i+1] = src[i]
		}
		if err := f.dev.DrawRGBBitmap8(0, int16(y), dst, int16(f.width), int16(rows)); err != nil {
			return err
		}
	}
	return nil
}
