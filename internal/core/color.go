package core

// Color identifies a foreground color for a screen cell. The platform layer
// maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the game elements and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
