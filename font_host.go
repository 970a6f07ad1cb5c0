//go:build !tinygo

package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"drawbot/display"
	"drawbot/hal"
	"drawbot/tftui"
	"drawbot/vectorfont"
)

var (
	previewScale int
	previewOut   string
)

func init() {
	fontPreviewCmd.Flags().IntVar(&previewScale, "scale", 1, "Stroke scale factor")
	fontPreviewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.png", "PNG file to write")

	fontCmd.AddCommand(fontListCmd)
	fontCmd.AddCommand(fontInfoCmd)
	fontCmd.AddCommand(fontPreviewCmd)
}

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Inspect stroke font files",
}

var fontListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fonts in the --fonts directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := vectorfont.List(os.DirFS(fontsDir), ".")
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

var fontInfoCmd = &cobra.Command{
	Use:   "info <font>",
	Short: "Print the glyph range of a font",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openFontArg(args[0])
		if err != nil {
			return err
		}
		first, last := f.Range()
		w, err := f.Size("Hello!", 1)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "glyphs:  %d\n", f.Count())
		fmt.Fprintf(out, "range:   0x%02x-0x%02x\n", first, last-1)
		fmt.Fprintf(out, "\"Hello!\": %d px\n", w)
		return nil
	},
}

var fontPreviewCmd = &cobra.Command{
	Use:   "preview <font> <text>",
	Short: "Render text to a PNG the size of the panel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openFontArg(args[0])
		if err != nil {
			return err
		}
		fb := hal.NewMemoryFramebuffer(hal.DisplayWidth, hal.DisplayHeight)
		if err := renderPreview(fb, f, args[1], previewScale); err != nil {
			return err
		}

		out, err := os.Create(previewOut)
		if err != nil {
			return err
		}
		if err := png.Encode(out, hal.SnapshotRGBA(fb, nil)); err != nil {
			_ = out.Close()
			return fmt.Errorf("encode %s: %w", previewOut, err)
		}
		if err := out.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", previewOut)
		return nil
	},
}

// openFontArg opens a font by path, falling back to the --fonts directory.
func openFontArg(name string) (*vectorfont.Font, error) {
	if _, err := os.Stat(name); err == nil {
		return vectorfont.Open(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return vectorfont.Open(os.DirFS(fontsDir), name)
}

// renderPreview draws text centered on a blue panel, as the Write Message
// program does.
func renderPreview(fb hal.Framebuffer, f *vectorfont.Font, text string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	c := display.New(display.NewFramebuffer(fb))
	c.Fill(tftui.Blue)

	w, err := f.Size(text, scale)
	if err != nil {
		return err
	}
	return f.Draw(c, text, c.Width()/2-w/2, c.Height()/2, scale, tftui.White)
}
