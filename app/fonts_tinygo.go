//go:build tinygo && baremetal

package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"machine"

	"drawbot/hal"

	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs/fatfs"
)

// DefaultFontDir is the font directory on the SD card.
const DefaultFontDir = "fonts"

// SD card on the second SPI bus, clear of the panel and joystick pins.
const (
	sdSCK = machine.Pin(14)
	sdSDO = machine.Pin(13)
	sdSDI = machine.Pin(12)
	sdCS  = machine.Pin(15)
)

func defaultFonts(log hal.Logger) (fs.FS, string) {
	sd := sdcard.New(machine.SPI1, sdSCK, sdSDO, sdSDI, sdCS)
	if err := sd.Configure(); err != nil {
		logLine(log, "fonts: sd card: "+err.Error())
		return nil, DefaultFontDir
	}

	fat := fatfs.New(&sd).Configure(&fatfs.Config{SectorSize: fatfs.SectorSize})
	if err := fat.Mount(); err != nil {
		// Removable media is never formatted.
		logLine(log, "fonts: mount: "+err.Error())
		return nil, DefaultFontDir
	}
	return &sdFonts{fat: fat}, DefaultFontDir
}

func logLine(log hal.Logger, s string) {
	if log != nil {
		log.WriteLineString(s)
	}
}

// sdFonts is a read-only fs.FS over a mounted FAT volume.
type sdFonts struct {
	fat *fatfs.FATFS
}

func (s *sdFonts) Open(name string) (fs.File, error) {
	data, err := s.ReadFile(name)
	if err != nil {
		return nil, err
	}
	fi, err := s.fat.Stat(fatPath(name))
	if err != nil {
		return nil, mapFatErr("stat", name, err)
	}
	return &sdFile{Reader: bytes.NewReader(data), fi: fi}, nil
}

func (s *sdFonts) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := s.fat.OpenFile(fatPath(name), os.O_RDONLY)
	if err != nil {
		return nil, mapFatErr("open", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, mapFatErr("read", name, err)
	}
	return data, nil
}

func (s *sdFonts) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	f, err := s.fat.OpenFile(fatPath(name), os.O_RDONLY)
	if err != nil {
		return nil, mapFatErr("open dir", name, err)
	}
	defer func() { _ = f.Close() }()

	infos, err := f.Readdir(0)
	if err != nil {
		return nil, mapFatErr("readdir", name, err)
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, fi := range infos {
		if n := fi.Name(); n == "." || n == ".." {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(fi))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type sdFile struct {
	*bytes.Reader
	fi fs.FileInfo
}

func (f *sdFile) Stat() (fs.FileInfo, error) { return f.fi, nil }
func (f *sdFile) Close() error               { return nil }

func fatPath(name string) string {
	if name == "." {
		return "/"
	}
	return "/" + name
}

func mapFatErr(op, name string, err error) error {
	var fr fatfs.FileResult
	if errors.As(err, &fr) {
		switch fr {
		case fatfs.FileResultNoFile, fatfs.FileResultNoPath:
			return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		case fatfs.FileResultDenied, fatfs.FileResultLocked:
			return &fs.PathError{Op: op, Path: name, Err: fs.ErrPermission}
		case fatfs.FileResultInvalidName, fatfs.FileResultInvalidParameter:
			return &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
		}
	}
	return fmt.Errorf("sd %s %s: %w", op, name, err)
}
