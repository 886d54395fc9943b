package engine

import "time"

// Snapshot is a read-only view of the game for renderers. The segment slice
// is a copy; mutating it never touches engine state.
type Snapshot struct {
	Board    Board
	Snake    []Position // Ordered, head first
	Food     Position
	Score    int
	GameOver bool
	Won      bool // Board full: every cell eaten
	Interval time.Duration
}

// Snapshot captures the current state under the engine lock.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	segs := make([]Position, len(e.snake))
	copy(segs, e.snake)

	return Snapshot{
		Board:    e.board,
		Snake:    segs,
		Food:     e.food,
		Score:    e.score,
		GameOver: e.gameOver,
		Won:      e.won,
		Interval: e.interval,
	}
}
