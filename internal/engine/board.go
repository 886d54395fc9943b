package engine

// Position is a single board cell, addressed by column (X) and row (Y).
type Position struct {
	X, Y int
}

// Board is the fixed grid the game is played on. Dimensions are derived
// once from the pixel configuration and never change afterwards.
type Board struct {
	Cols     int // Number of columns
	Rows     int // Number of rows
	CellSize int // Cell edge length in pixels, kept for renderers
}

// Contains reports whether p lies inside the playable area.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// Cells returns the total number of cells on the board.
func (b Board) Cells() int {
	return b.Cols * b.Rows
}
