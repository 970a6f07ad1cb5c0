//go:build !tinygo

package app

import (
	"io/fs"
	"os"

	"drawbot/hal"
)

// DefaultFontDir is where the host looks for .fnt files.
const DefaultFontDir = "fonts"

func defaultFonts(_ hal.Logger) (fs.FS, string) {
	return os.DirFS(DefaultFontDir), "."
}
