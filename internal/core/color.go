package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

// Colors used by the court renderer.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorBrightYellow
	ColorBrightCyan
)
