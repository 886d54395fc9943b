package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.Cols() != 50 || cfg.Rows() != 33 {
		t.Errorf("default grid = %dx%d, want 50x33", cfg.Cols(), cfg.Rows())
	}
	if cfg.BaseInterval() != 200*time.Millisecond || cfg.MinInterval() != 100*time.Millisecond {
		t.Errorf("default intervals = %v/%v, want 200ms/100ms", cfg.BaseInterval(), cfg.MinInterval())
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
board_width_px: 400
board_height_px: 200
cell_size_px: 20
base_interval_ms: 150
min_interval_ms: 80
seed: 99
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Cols() != 20 || cfg.Rows() != 10 {
		t.Errorf("grid = %dx%d, want 20x10", cfg.Cols(), cfg.Rows())
	}
	if cfg.BaseIntervalMs != 150 || cfg.MinIntervalMs != 80 {
		t.Errorf("intervals = %d/%d, want 150/80", cfg.BaseIntervalMs, cfg.MinIntervalMs)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("cell_size_px: 50\n"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CellSizePx != 50 {
		t.Errorf("cell size = %d, want 50", cfg.CellSizePx)
	}
	if cfg.BoardWidthPx != Default().BoardWidthPx {
		t.Errorf("board width = %d, want default %d", cfg.BoardWidthPx, Default().BoardWidthPx)
	}
}

func TestLoadMissingCustomFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for an explicit missing config path")
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("min_interval_ms: 500\n"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for min > base")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero cell size", func(c *Config) { c.CellSizePx = 0 }, true},
		{"board smaller than one cell", func(c *Config) { c.BoardHeightPx = 10 }, true},
		{"zero base interval", func(c *Config) { c.BaseIntervalMs = 0 }, true},
		{"min above base", func(c *Config) { c.MinIntervalMs = 999 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFit(t *testing.T) {
	cfg := Default()
	fitted := cfg.Fit(80, 24)

	if fitted.Cols() != 78 {
		t.Errorf("fitted cols = %d, want 78", fitted.Cols())
	}
	if fitted.Rows() != 19 {
		t.Errorf("fitted rows = %d, want 19", fitted.Rows())
	}
	if fitted.CellSizePx != cfg.CellSizePx {
		t.Error("Fit changed the cell size")
	}
	if err := fitted.Validate(); err != nil {
		t.Errorf("fitted config does not validate: %v", err)
	}

	// Tiny terminals clamp to the smallest playable board.
	tiny := cfg.Fit(3, 3)
	if tiny.Cols() < 3 || tiny.Rows() < 1 {
		t.Errorf("tiny fit = %dx%d, want at least 3x1", tiny.Cols(), tiny.Rows())
	}
}
