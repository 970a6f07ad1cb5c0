//go:build !tinygo

// Mkflash writes a flash image holding a Drawbot settings document.
//
// Usage:
//
//	mkflash [--out drawbot.flash] [--from settings.yaml] [KEY=VALUE...]
//
// Settings start from the factory defaults, then the YAML file, then the
// KEY=VALUE arguments. The image can be flashed or used on the host via
// DRAWBOT_FLASH_PATH.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"drawbot/config"
	"drawbot/hal"
)

const (
	defaultFlashPath = "drawbot.flash"
	defaultFlashSize = 64 * 1024
)

var (
	outPath   string
	fromPath  string
	flashSize uint32
	noDefault bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mkflash [KEY=VALUE...]",
	Short: "Write a flash image with Drawbot settings",
	Example: `  # Factory settings
  mkflash

  # Custom access point and message
  mkflash AP_NAME=Workshop AP_PASS=supersecret MESSAGE="Hi there"`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVarP(&outPath, "out", "o", defaultFlashPath, "Flash image to create")
	rootCmd.Flags().StringVar(&fromPath, "from", "", "YAML file of KEY: value settings")
	rootCmd.Flags().Uint32Var(&flashSize, "size", defaultFlashSize, "Image size in bytes")
	rootCmd.Flags().BoolVar(&noDefault, "no-defaults", false, "Start from an empty settings set")
}

func run(cmd *cobra.Command, args []string) error {
	settings := config.Defaults()
	if noDefault {
		settings = map[string]string{}
	}
	if fromPath != "" {
		if err := readSettings(fromPath, settings); err != nil {
			return err
		}
	}
	if err := parseArgs(args, settings); err != nil {
		return err
	}

	// A fresh image reads fully erased.
	if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	fl, err := hal.OpenFileFlash(outPath, flashSize)
	if err != nil {
		return err
	}
	defer func() {
		if c, ok := fl.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	store := config.Open(config.FlashBackend{Flash: fl}, nil)
	if err := store.Reset(settings); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, k := range store.Keys() {
		fmt.Fprintf(out, "%s=%s\n", k, store.Get(k))
	}
	fmt.Fprintf(out, "wrote %s (%d bytes)\n", outPath, flashSize)
	return nil
}

func readSettings(path string, dst map[string]string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for k, v := range m {
		dst[k] = v
	}
	return nil
}

func parseArgs(args []string, dst map[string]string) error {
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected KEY=VALUE, got %q", a)
		}
		dst[k] = v
	}
	return nil
}
