package core

// Color is the foreground color of a screen cell. The terminal front end
// maps each value to an ANSI 256-color code.
type Color uint8

// Palette. ColorDefault leaves the terminal's own foreground color.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
