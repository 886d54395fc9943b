// Package config provides YAML-based game configuration loading for the
// snake terminal game.
package config

import (
	"fmt"
	"time"
)

// Config holds the startup parameters for a game. Board dimensions are given
// in pixels together with a cell size, matching the reference settings; the
// engine derives columns and rows from them. There is no runtime
// reconfiguration beyond restarting the program.
type Config struct {
	BoardWidthPx   int   `yaml:"board_width_px"`
	BoardHeightPx  int   `yaml:"board_height_px"`
	CellSizePx     int   `yaml:"cell_size_px"`
	BaseIntervalMs int   `yaml:"base_interval_ms"`
	MinIntervalMs  int   `yaml:"min_interval_ms"`
	Seed           int64 `yaml:"seed"` // 0 = time-based
}

// BaseInterval returns the starting tick interval.
func (c Config) BaseInterval() time.Duration {
	return time.Duration(c.BaseIntervalMs) * time.Millisecond
}

// MinInterval returns the tick interval floor.
func (c Config) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMs) * time.Millisecond
}

// Cols returns the derived column count.
func (c Config) Cols() int {
	if c.CellSizePx <= 0 {
		return 0
	}
	return c.BoardWidthPx / c.CellSizePx
}

// Rows returns the derived row count.
func (c Config) Rows() int {
	if c.CellSizePx <= 0 {
		return 0
	}
	return c.BoardHeightPx / c.CellSizePx
}

// Validate mirrors the engine's startup constraints so a bad config file
// fails before any terminal state is entered.
func (c Config) Validate() error {
	if c.CellSizePx <= 0 {
		return fmt.Errorf("config: cell_size_px must be positive, got %d", c.CellSizePx)
	}
	if c.Cols() < 1 || c.Rows() < 1 {
		return fmt.Errorf("config: board %dx%dpx with %dpx cells yields an empty grid", c.BoardWidthPx, c.BoardHeightPx, c.CellSizePx)
	}
	if c.BaseIntervalMs <= 0 || c.MinIntervalMs <= 0 {
		return fmt.Errorf("config: tick intervals must be positive")
	}
	if c.MinIntervalMs > c.BaseIntervalMs {
		return fmt.Errorf("config: min_interval_ms %d exceeds base_interval_ms %d", c.MinIntervalMs, c.BaseIntervalMs)
	}
	return nil
}

// Fit resizes the board to fill a terminal of termW x termH character cells,
// keeping the cell size and intervals. The margins account for the HUD, the
// border and the help line drawn around the board.
func (c Config) Fit(termW, termH int) Config {
	const (
		chromeCols = 2 // Left/right border
		chromeRows = 5 // HUD (2) + top/bottom border (2) + help line (1)
	)

	cols := termW - chromeCols
	rows := termH - chromeRows
	if cols < 3 {
		cols = 3
	}
	if rows < 1 {
		rows = 1
	}

	fitted := c
	fitted.BoardWidthPx = cols * c.CellSizePx
	fitted.BoardHeightPx = rows * c.CellSizePx
	return fitted
}
