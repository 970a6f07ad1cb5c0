package config

import (
	"encoding/binary"
	"errors"
	"fmt"

	"drawbot/hal"
)

// Flash record layout: magic, little-endian payload length, payload.
var flashMagic = [4]byte{'D', 'B', 'C', 'F'}

const flashHeaderBytes = 8

var (
	ErrFlashFull    = errors.New("config: document does not fit in flash")
	ErrFlashCorrupt = errors.New("config: corrupt flash record")
)

// FlashBackend keeps the document at offset 0 of a raw flash device.
type FlashBackend struct {
	Flash hal.Flash
}

func (b FlashBackend) Load() ([]byte, error) {
	if b.Flash == nil {
		return nil, ErrNoBackend
	}

	var hdr [flashHeaderBytes]byte
	if _, err := b.Flash.ReadAt(hdr[:], 0); err != nil {
		return nil, fmt.Errorf("read flash header: %w", err)
	}
	if erased(hdr[:]) {
		return nil, nil
	}
	if [4]byte(hdr[:4]) != flashMagic {
		return nil, ErrFlashCorrupt
	}

	n := binary.LittleEndian.Uint32(hdr[4:])
	if n > b.Flash.SizeBytes()-flashHeaderBytes {
		return nil, ErrFlashCorrupt
	}
	data := make([]byte, n)
	if n == 0 {
		return data, nil
	}
	if _, err := b.Flash.ReadAt(data, flashHeaderBytes); err != nil {
		return nil, fmt.Errorf("read flash record: %w", err)
	}
	return data, nil
}

func (b FlashBackend) Save(data []byte) error {
	if b.Flash == nil {
		return ErrNoBackend
	}

	total := uint32(flashHeaderBytes + len(data))
	if total > b.Flash.SizeBytes() {
		return ErrFlashFull
	}
	block := b.Flash.EraseBlockBytes()
	if block == 0 {
		return hal.ErrNotImplemented
	}
	if err := b.Flash.Erase(0, (total+block-1)/block*block); err != nil {
		return fmt.Errorf("erase flash: %w", err)
	}

	rec := make([]byte, total)
	copy(rec, flashMagic[:])
	binary.LittleEndian.PutUint32(rec[4:], uint32(len(data)))
	copy(rec[flashHeaderBytes:], data)
	if _, err := b.Flash.WriteAt(rec, 0); err != nil {
		return fmt.Errorf("write flash record: %w", err)
	}
	return nil
}

func erased(b []byte) bool {
	for _, v := range b {
		if v != 0xFF {
			return false
		}
	}
	return true
}
