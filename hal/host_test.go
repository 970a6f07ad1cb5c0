//go:build !tinygo

package hal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSnapshotRGBA(t *testing.T) {
	fb := NewMemoryFramebuffer(4, 2)
	fb.ClearRGB(255, 0, 0)

	img := SnapshotRGBA(fb, nil)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	c := img.RGBAAt(3, 1)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Fatalf("pixel = %+v; want opaque red", c)
	}
}

func TestFileFlashRequiresErase(t *testing.T) {
	f, err := OpenFileFlash(filepath.Join(t.TempDir(), "flash.bin"), 8192)
	if err != nil {
		t.Fatalf("OpenFileFlash: %v", err)
	}

	buf := []byte{0x0F}
	if _, err := f.WriteAt(buf, 0); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := f.WriteAt([]byte{0xF0}, 0); err != ErrFlashWriteRequiresErase {
		t.Fatalf("second write err = %v; want ErrFlashWriteRequiresErase", err)
	}
	if err := f.Erase(0, 4096); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if _, err := f.WriteAt([]byte{0xF0}, 0); err != nil {
		t.Fatalf("write after erase: %v", err)
	}
}

func TestPressScript(t *testing.T) {
	h := newHost(nopLogger{})
	sc := newPressScript([]int{PinDown}, 10*time.Millisecond)

	t0 := time.Unix(0, 0)
	sc.step(h, t0)
	sc.step(h, t0.Add(10*time.Millisecond))
	if level, _ := h.GPIO().Pin(PinDown).Read(); !level {
		t.Fatal("expected DOWN held after first hold period")
	}
	sc.step(h, t0.Add(20*time.Millisecond))
	if level, _ := h.GPIO().Pin(PinDown).Read(); level {
		t.Fatal("expected DOWN released after second hold period")
	}
}

func TestFileFlashReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	f, err := OpenFileFlash(path, 8192)
	if err != nil {
		t.Fatalf("OpenFileFlash: %v", err)
	}
	if _, err := f.WriteAt([]byte("hi"), 4096); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = f.(interface{ Close() error }).Close()

	// The existing size wins over the requested one.
	g, err := OpenFileFlash(path, 4096)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if g.SizeBytes() != 8192 {
		t.Fatalf("size = %d; want 8192", g.SizeBytes())
	}
	buf := make([]byte, 3)
	if _, err := g.ReadAt(buf, 4096); err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf) != "hi\xff" {
		t.Fatalf("read %q", buf)
	}
}

func TestFileFlashBounds(t *testing.T) {
	f, err := OpenFileFlash(filepath.Join(t.TempDir(), "flash.bin"), 8192)
	if err != nil {
		t.Fatalf("OpenFileFlash: %v", err)
	}
	if _, err := f.ReadAt(make([]byte, 1), 8192); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("read past end err = %v", err)
	}
	if err := f.Erase(4096, 8192); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("erase past end err = %v", err)
	}
	if err := f.Erase(1, 4096); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("unaligned erase err = %v", err)
	}
	n, err := f.ReadAt(make([]byte, 16), 8190)
	if err != nil || n != 2 {
		t.Fatalf("clipped read n=%d err=%v", n, err)
	}
	if _, err := OpenFileFlash(filepath.Join(t.TempDir(), "x"), 100); err == nil {
		t.Fatal("expected unaligned size to be rejected")
	}
}

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func TestHostFlashUnavailable(t *testing.T) {
	t.Setenv(FlashPathEnvVar, t.TempDir())
	var log lines
	h := newHost(&log)

	fl := h.Flash()
	if _, err := fl.ReadAt(make([]byte, 1), 0); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("read err = %v", err)
	}
	if len(log) != 1 || !strings.HasPrefix(log[0], "hal: open flash file") {
		t.Fatalf("log = %q", log)
	}
}
