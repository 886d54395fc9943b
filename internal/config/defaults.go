package config

// Default returns the built-in configuration, matching the reference game:
// a 1500x1000px board with 30px cells (50x33 grid), a 200ms base tick and a
// 100ms floor.
func Default() Config {
	return Config{
		BoardWidthPx:   1500,
		BoardHeightPx:  1000,
		CellSizePx:     30,
		BaseIntervalMs: 200,
		MinIntervalMs:  100,
	}
}
