package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/snaketui/internal/config"
	"github.com/dkotenko/snaketui/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagCell   int
	flagBaseMs int
	flagMinMs  int
	flagFit    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer the snake
  Space/R      - Restart (after game over)
  Q/Ctrl+C     - Quit

By default the board is sized to fill the terminal. Pass --fit=false to use
the configured pixel dimensions instead.

Examples:
  snaketui play
  snaketui play --fit=false --width 900 --height 600 --cell 30
  snaketui play --base-ms 120 --min-ms 60`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in pixels (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in pixels (overrides config)")
	playCmd.Flags().IntVar(&flagCell, "cell", 0, "Cell size in pixels (overrides config)")
	playCmd.Flags().IntVar(&flagBaseMs, "base-ms", 0, "Base tick interval in ms (overrides config)")
	playCmd.Flags().IntVar(&flagMinMs, "min-ms", 0, "Minimum tick interval in ms (overrides config)")
	playCmd.Flags().BoolVar(&flagFit, "fit", true, "Size the board to the terminal")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applyOverrides(cmd, &cfg)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagFit {
		cfg = cfg.Fit(width, height)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(cfg, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// applyOverrides copies explicitly set flags over the loaded config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.BoardWidthPx = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.BoardHeightPx = flagHeight
	}
	if cmd.Flags().Changed("cell") {
		cfg.CellSizePx = flagCell
	}
	if cmd.Flags().Changed("base-ms") {
		cfg.BaseIntervalMs = flagBaseMs
	}
	if cmd.Flags().Changed("min-ms") {
		cfg.MinIntervalMs = flagMinMs
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
}
