//go:build !tinygo

// Drawbot runs the button-driven menu on a desktop window or headless.
//
// Usage:
//
//	drawbot [command] [flags]
//
// Running without a command opens the window. Arrow keys steer the
// joystick, Space is center, Enter is enter and Tab is the boot button.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drawbot/app"
	"drawbot/config"
	"drawbot/hal"
	"drawbot/internal/buildinfo"
	"drawbot/internal/logging"
)

var (
	logLevel   string
	fontsDir   string
	configFile string

	headlessHz     int
	headlessTicks  uint64
	headlessScript string
	headlessHold   time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drawbot",
	Short: "Drawbot menu simulator",
	Long: `Runs the Drawbot menu programs against a simulated board.

The joystick is driven from the keyboard in window mode, or from a press
script in headless mode. Settings persist in the flash image named by
DRAWBOT_FLASH_PATH unless --config-file is given.`,
	Version:       buildinfo.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&fontsDir, "fonts", app.DefaultFontDir, "Directory holding .fnt stroke fonts")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "Keep settings in this YAML file instead of the flash image")

	headlessCmd.Flags().IntVar(&headlessHz, "hz", 60, "Tick rate")
	headlessCmd.Flags().Uint64Var(&headlessTicks, "ticks", 0, "Stop after N ticks (0 = run until Quit)")
	headlessCmd.Flags().StringVar(&headlessScript, "script", "", "Comma separated presses, by name (up, down, left, right, center, enter, change) or pin number")
	headlessCmd.Flags().DurationVar(&headlessHold, "hold", 150*time.Millisecond, "How long each scripted press is held and released")

	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fontCmd)
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without a window",
	Example: `  # Open Pick a Number, choose Two, then stop
  drawbot headless --script center,down,center --ticks 300`,
	RunE: runHeadless,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "drawbot %s\n", buildinfo.Long())
	},
}

func runWindow(cmd *cobra.Command, args []string) error {
	h, logger, err := newHost()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return hal.RunWindow(h, func(h hal.HAL) func() error {
		return app.New(h, appConfig(h))
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	pins, err := parseScript(headlessScript)
	if err != nil {
		return err
	}
	h, logger, err := newHost()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := hal.HeadlessConfig{Hz: headlessHz, Ticks: headlessTicks, Script: pins, Hold: headlessHold}
	err = hal.RunHeadless(ctx, h, func(h hal.HAL) func() error {
		return app.New(h, appConfig(h))
	}, cfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newHost() (hal.HAL, *zap.Logger, error) {
	logger, err := logging.New(logLevel)
	if err != nil {
		return nil, nil, err
	}
	return hal.NewWithLogger(logging.HALLogger{L: logger.Named("drawbot")}), logger, nil
}

func appConfig(h hal.HAL) app.Config {
	cfg := app.Config{
		Fonts:   os.DirFS(fontsDir),
		FontDir: ".",
	}
	if configFile != "" {
		cfg.Store = config.Open(config.FileBackend{Path: configFile}, h.Logger())
	}
	return cfg
}

var pinNames = map[string]int{
	"up":     hal.PinUp,
	"down":   hal.PinDown,
	"left":   hal.PinLeft,
	"right":  hal.PinRight,
	"center": hal.PinCenter,
	"enter":  hal.PinEnter,
	"change": hal.PinZero,
}

// parseScript turns "up,center,27" into board pins.
func parseScript(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var pins []int
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if pin, ok := pinNames[f]; ok {
			pins = append(pins, pin)
			continue
		}
		pin, err := strconv.Atoi(f)
		if err != nil || pin < 0 || pin >= hal.PinCount {
			return nil, fmt.Errorf("script: unknown press %q", f)
		}
		pins = append(pins, pin)
	}
	return pins, nil
}
