//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"drawbot/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and maps
// keyboard keys onto the board button pins. It blocks until the window closes.
func RunWindow(h HAL, newApp func(HAL) func() error) error {
	host, ok := h.(*hostHAL)
	if !ok {
		return errors.New("window mode requires the host HAL")
	}
	step := newApp(host)

	g := &hostGame{h: host, step: step}
	ebiten.SetWindowTitle("Drawbot (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(host.fb.width*3, host.fb.height*3)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll(g.h)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	g.img = SnapshotRGBA(fb, g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
