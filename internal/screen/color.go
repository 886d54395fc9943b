package screen

// Color is a foreground color for a screen cell. The terminal layer maps
// these to ANSI palette entries; the game never emits drawing primitives or
// escape codes itself.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
