// Package app is the Drawbot program launcher: a main menu of small
// programs built on tftui.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime/debug"

	"drawbot/button"
	"drawbot/config"
	"drawbot/display"
	"drawbot/hal"
	"drawbot/tftui"
)

// Config wires an App. Zero fields take platform defaults.
type Config struct {
	// Input replaces the board joystick.
	Input tftui.Input

	// Store replaces the settings store kept in the HAL flash.
	Store *config.Store

	// Fonts holds the stroke fonts in FontDir.
	Fonts   fs.FS
	FontDir string

	UI tftui.Options
}

type App struct {
	h     hal.HAL
	log   hal.Logger
	ui    *tftui.UI
	store *config.Store
	fonts fs.FS
	dir   string
}

type program struct {
	name string
	run  func(*App)
}

// programs is the main menu. A nil run quits.
var programs = []program{
	{"Pick a Number", (*App).pickNumber},
	{"Write Message", (*App).writeMessage},
	{"Draw a Star", (*App).drawStar},
	{"Show Fonts", (*App).showFonts},
	{"AP Settings", (*App).apSettings},
	{"Reset Config", (*App).resetConfig},
	{"System Info", (*App).systemInfo},
	{"Quit", nil},
}

func NewApp(h hal.HAL, cfg Config) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	log := h.Logger()

	if bl := h.Backlight(); bl != nil {
		bl.High()
	}

	in := cfg.Input
	if in == nil {
		in = button.NewJoyStick(button.DefaultBindings(h.GPIO()))
	}
	store := cfg.Store
	if store == nil {
		store = config.Open(config.FlashBackend{Flash: h.Flash()}, log)
	}

	opts := cfg.UI
	if opts.Font.Face == nil {
		opts = tftui.DefaultOptions()
	}
	canvas := display.New(display.NewFramebuffer(disp.Framebuffer()))

	a := &App{
		h:     h,
		log:   log,
		ui:    tftui.New(canvas, in, opts, log),
		store: store,
		fonts: cfg.Fonts,
		dir:   cfg.FontDir,
	}
	if a.fonts == nil {
		a.fonts, a.dir = defaultFonts(log)
	}
	if a.dir == "" {
		a.dir = "."
	}
	return a, nil
}

// Run shows the main menu until Quit is picked.
func (a *App) Run() {
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.name
	}

	active := 0
	for {
		i, ok := a.ui.Menu("Drawbot", names, active)
		if !ok {
			continue
		}
		active = i
		p := programs[i]
		if p.run == nil {
			a.ui.Cls("Bye!", a.ui.Lines()/2)
			_ = a.ui.Canvas().Display()
			return
		}
		a.logf("app: running %s", p.name)
		p.run(a)
	}
}

// New starts the menu on its own goroutine and returns a step function for
// the host runners. The step returns hal.ErrQuit once the menu exits.
func New(h hal.HAL, cfg Config) func() error {
	bootScreen(h, "starting")
	a, err := NewApp(h, cfg)
	if err != nil {
		return func() error { return err }
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				showPanic(h, r, debug.Stack())
				done <- fmt.Errorf("app: panic: %v", r)
			}
		}()
		a.Run()
		done <- hal.ErrQuit
	}()

	var exit error
	return func() error {
		if exit != nil {
			return exit
		}
		select {
		case exit = <-done:
			return exit
		default:
			return nil
		}
	}
}

// Run is the firmware entrypoint. The menu comes back after Quit.
func Run(h hal.HAL, cfg Config) {
	bootScreen(h, "starting")
	a, err := NewApp(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString(err.Error())
		}
		select {}
	}

	defer func() {
		if r := recover(); r != nil {
			showPanic(h, r, debug.Stack())
			select {}
		}
	}()
	for {
		a.Run()
	}
}

// Store exposes the settings store.
func (a *App) Store() *config.Store { return a.store }

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// notice shows text centered and waits for a button.
func (a *App) notice(lines ...string) {
	a.ui.Cls("", 0)
	mid := a.ui.Lines()/2 - len(lines)/2 - 1
	for i, l := range lines {
		a.ui.Center(l, mid+i, a.ui.Options().Normal)
	}
	a.pressToContinue()
}

func (a *App) pressToContinue() {
	last := a.ui.Lines() - 1
	a.ui.Center("Press to", last-1, a.ui.Options().Normal)
	a.ui.Wait("Continue", last)
}
