// Package engine implements the snake game state machine: tick-driven
// movement, collision detection, food placement and restart semantics.
// It contains no terminal, timer or UI dependencies so the whole simulation
// can be unit-tested by calling Tick directly.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Config holds the parameters supplied once at startup. Board dimensions are
// given in pixels together with a cell size; columns and rows are derived.
type Config struct {
	BoardWidthPx  int
	BoardHeightPx int
	CellSizePx    int

	// BaseInterval is the tick interval at score 0. Each point shortens the
	// interval by 2ms, floored at MinInterval.
	BaseInterval time.Duration
	MinInterval  time.Duration

	// Seed selects the food placement sequence. 0 means time-based.
	Seed int64
}

// Scheduler is the timer capability the engine drives. The engine requests a
// tick after each step and cancels the pending one on restart; it never
// touches an event-loop primitive itself.
type Scheduler interface {
	ScheduleTick(after time.Duration)
	CancelScheduledTick()
}

// Engine owns all game state. Operations are serialized by an internal
// mutex, so a host with a separate render goroutine never observes a
// partially mutated state.
type Engine struct {
	mu    sync.Mutex
	board Board
	base  time.Duration
	min   time.Duration
	seed  int64
	sched Scheduler
	rng   *rand.Rand

	snake    []Position // Head at index 0
	dir      Direction  // Committed direction, applied on the last tick
	nextDir  Direction  // Buffered direction for the next tick
	food     Position
	score    int
	gameOver bool
	won      bool
	interval time.Duration
}

// New validates the configuration and constructs an engine in the Running
// state: snake of length 3 centered horizontally, heading right, score 0,
// tick interval at the base value. The first tick is scheduled immediately.
// A nil scheduler is allowed; the engine then never self-schedules, which is
// how tests drive Tick by hand.
func New(cfg Config, sched Scheduler) (*Engine, error) {
	if cfg.CellSizePx <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("cell size must be positive, got %d", cfg.CellSizePx)}
	}
	cols := cfg.BoardWidthPx / cfg.CellSizePx
	rows := cfg.BoardHeightPx / cfg.CellSizePx
	if cols < 1 || rows < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("board %dx%dpx yields %dx%d cells", cfg.BoardWidthPx, cfg.BoardHeightPx, cols, rows)}
	}
	if cols < 3 {
		return nil, &ConfigError{Reason: fmt.Sprintf("board too narrow for the starting snake: %d columns", cols)}
	}
	if cfg.BaseInterval <= 0 || cfg.MinInterval <= 0 {
		return nil, &ConfigError{Reason: "tick intervals must be positive"}
	}
	if cfg.MinInterval > cfg.BaseInterval {
		return nil, &ConfigError{Reason: fmt.Sprintf("min interval %v exceeds base interval %v", cfg.MinInterval, cfg.BaseInterval)}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		board: Board{Cols: cols, Rows: rows, CellSize: cfg.CellSizePx},
		base:  cfg.BaseInterval,
		min:   cfg.MinInterval,
		seed:  seed,
		sched: sched,
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.reset()
	if e.sched != nil {
		e.sched.ScheduleTick(e.interval)
	}
	return e, nil
}

// Board returns the derived board geometry.
func (e *Engine) Board() Board {
	return e.board
}

// reset builds a fresh run. Caller must hold e.mu (or be the constructor).
func (e *Engine) reset() {
	cx := e.board.Cols / 2
	cy := e.board.Rows / 2
	// Keep the whole starting body on the board on narrow grids.
	if cx < 2 {
		cx = 2
	}

	e.snake = []Position{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	e.dir = DirRight
	e.nextDir = DirRight
	e.score = 0
	e.gameOver = false
	e.won = false
	e.interval = e.base

	if err := e.spawnFood(); err != nil {
		// Snake already covers the board. Nothing left to play for.
		e.gameOver = true
		e.won = true
	}
}

// RequestDirectionChange buffers a direction for the next tick. Ignored when
// the run is over, and ignored when dir reverses the committed direction:
// turning 180 degrees would drive the head straight into its own neck.
// The pending direction is compared against the committed one, not against
// an earlier pending request, so two quick key presses cannot smuggle a
// reversal through.
func (e *Engine) RequestDirectionChange(dir Direction) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver {
		return
	}
	if dir == e.dir.Opposite() {
		return
	}
	e.nextDir = dir
}

// RequestRestart discards the current run and starts a new one with the same
// board configuration. Only valid after game over; otherwise a no-op, since
// input timing is inherently racy against the game phase.
func (e *Engine) RequestRestart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gameOver {
		return
	}
	if e.sched != nil {
		e.sched.CancelScheduledTick()
	}
	e.reset()
	if e.sched != nil {
		e.sched.ScheduleTick(e.interval)
	}
}

// Tick advances the simulation one step: commit the buffered direction, move
// the head, detect collisions, eat or translate, and reschedule. No-op once
// the run is over.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver {
		return
	}

	e.dir = e.nextDir
	dx, dy := e.dir.Vector()
	head := e.snake[0]
	newHead := Position{X: head.X + dx, Y: head.Y + dy}

	// Collision is tested against the pre-move body: the current tail still
	// counts even on a non-eating tick where it is about to move away.
	// Reference parity, not a bug.
	if !e.board.Contains(newHead) || e.occupied(newHead) {
		e.gameOver = true
		return
	}

	e.snake = append([]Position{newHead}, e.snake...)

	if newHead == e.food {
		e.score++
		e.interval = e.intervalFor(e.score)
		if err := e.spawnFood(); err != nil {
			// Board full: the snake ate everything. Count it as a win
			// rather than crashing; the player can restart.
			e.gameOver = true
			e.won = true
			return
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	if e.sched != nil {
		e.sched.ScheduleTick(e.interval)
	}
}

// occupied reports whether any snake segment sits on p.
func (e *Engine) occupied(p Position) bool {
	for _, seg := range e.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food uniformly at random among all empty cells.
// Returns ErrBoardFull when no empty cell exists.
func (e *Engine) spawnFood() error {
	empty := make([]Position, 0, e.board.Cells()-len(e.snake))
	for y := 0; y < e.board.Rows; y++ {
		for x := 0; x < e.board.Cols; x++ {
			p := Position{X: x, Y: y}
			if !e.occupied(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return ErrBoardFull
	}
	e.food = empty[e.rng.Intn(len(empty))]
	return nil
}

// intervalFor returns the tick interval at the given score: linear speed-up
// of 2ms per point, floored at the configured minimum.
func (e *Engine) intervalFor(score int) time.Duration {
	d := e.base - time.Duration(score)*2*time.Millisecond
	if d < e.min {
		d = e.min
	}
	return d
}
