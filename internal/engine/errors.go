package engine

import "errors"

// ConfigError reports an engine configuration that cannot produce a playable
// board. It is fatal at startup; no partial engine is created.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "engine: invalid config: " + e.Reason
}

// ErrBoardFull is returned by food placement when the snake occupies every
// cell. The engine recovers by ending the run as a win instead of failing.
var ErrBoardFull = errors.New("engine: no empty cell left for food")
