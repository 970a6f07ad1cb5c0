//go:build tinygo && baremetal && (rp2040 || rp2350 || nrf || atsamd51)

package hal

import (
	"fmt"
	"machine"
)

// machineFlash is the on-chip flash past the program image.
type machineFlash struct{}

func newDeviceFlash() Flash {
	return machineFlash{}
}

func (machineFlash) SizeBytes() uint32 {
	return clampU32(machine.Flash.Size())
}

func (machineFlash) EraseBlockBytes() uint32 {
	return clampU32(machine.Flash.EraseBlockSize())
}

func (machineFlash) ReadAt(p []byte, off uint32) (int, error) {
	n, err := machine.Flash.ReadAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (machineFlash) WriteAt(p []byte, off uint32) (int, error) {
	n, err := machine.Flash.WriteAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash write at %d: %w", off, err)
	}
	return n, nil
}

func (f machineFlash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	bs := f.EraseBlockBytes()
	if bs == 0 {
		return ErrNotImplemented
	}
	if off%bs != 0 || size%bs != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: unaligned to %d", off, size, bs)
	}
	return machine.Flash.EraseBlocks(int64(off/bs), int64(size/bs))
}

func clampU32(v int64) uint32 {
	if v <= 0 {
		return 0
	}
	if v > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
