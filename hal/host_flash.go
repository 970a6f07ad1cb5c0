//go:build !tinygo

package hal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// FlashPathEnvVar names the host flash image. It defaults to
// drawbot.flash in the working directory.
const FlashPathEnvVar = "DRAWBOT_FLASH_PATH"

const (
	hostFlashDefaultPath      = "drawbot.flash"
	hostFlashDefaultSizeBytes = 64 * 1024
	hostFlashEraseBlockBytes  = 4096
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

var erasedBlock = bytes.Repeat([]byte{0xFF}, hostFlashEraseBlockBytes)

// hostFlash emulates NOR flash in a file. A nil file means the image could
// not be opened and every access fails with ErrNotImplemented.
type hostFlash struct {
	mu   sync.Mutex
	f    *os.File
	size uint32
}

func newHostFlash(log Logger) *hostFlash {
	path := os.Getenv(FlashPathEnvVar)
	if path == "" {
		path = hostFlashDefaultPath
	}
	f, err := openFileFlash(path, hostFlashDefaultSizeBytes)
	if err != nil {
		if log != nil {
			log.WriteLineString("hal: " + err.Error())
		}
		return &hostFlash{}
	}
	return f
}

// OpenFileFlash emulates NOR flash in a file: erased bytes read 0xFF and
// writes may only clear bits. A new file is created erased; an existing one
// keeps its size. The returned Flash also implements io.Closer.
func OpenFileFlash(path string, size uint32) (Flash, error) {
	return openFileFlash(path, size)
}

func openFileFlash(path string, size uint32) (*hostFlash, error) {
	if size == 0 || size%hostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("flash: size %d not multiple of erase size %d", size, hostFlashEraseBlockBytes)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash file %q: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash file %q: %w", path, err)
	}

	switch n := st.Size(); {
	case n > int64(^uint32(0)):
		_ = f.Close()
		return nil, fmt.Errorf("flash file %q too large", path)
	case n > 0:
		return &hostFlash{f: f, size: uint32(n)}, nil
	}

	hf := &hostFlash{f: f, size: size}
	if err := hf.eraseLocked(0, size); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("format flash file %q: %w", path, err)
	}
	return hf, nil
}

func (f *hostFlash) SizeBytes() uint32       { return f.size }
func (f *hostFlash) EraseBlockBytes() uint32 { return hostFlashEraseBlockBytes }

// clip bounds p to the image for an access at off.
func (f *hostFlash) clip(op string, p []byte, off uint32) ([]byte, error) {
	if f.f == nil {
		return nil, ErrNotImplemented
	}
	if off >= f.size {
		return nil, fmt.Errorf("flash %s at %d: %w", op, off, os.ErrInvalid)
	}
	if rest := int(f.size - off); len(p) > rest {
		p = p[:rest]
	}
	return p, nil
}

func (f *hostFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.clip("read", p, off)
	if err != nil {
		return 0, err
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *hostFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.clip("write", p, off)
	if err != nil {
		return 0, err
	}

	cur := make([]byte, len(p))
	if _, err := f.f.ReadAt(cur, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		// NOR writes can only clear bits.
		if cur[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *hostFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return ErrNotImplemented
	}
	if size == 0 {
		return nil
	}
	if off%hostFlashEraseBlockBytes != 0 || size%hostFlashEraseBlockBytes != 0 || off >= f.size || size > f.size-off {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	return f.eraseLocked(off, size)
}

func (f *hostFlash) eraseLocked(off, size uint32) error {
	for end := off + size; off < end; off += hostFlashEraseBlockBytes {
		if _, err := f.f.WriteAt(erasedBlock, int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
	}
	return nil
}

// Close releases the backing file.
func (f *hostFlash) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
