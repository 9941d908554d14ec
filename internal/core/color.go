package core

// Color is a foreground color for a screen cell, mapped by the platform
// layer to ANSI terminal colors.
type Color uint8

// Colors used by the field view and menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
