package core

import "strconv"

// Color is the foreground colour of a screen cell. The platform decides how
// to display it; ANSI gives the 256-colour code terminals understand.
type Color uint8

// Colours used by the shooter's sprites, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-colour code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault:
		return ""
	case c <= ColorWhite:
		return strconv.Itoa(int(c))
	case c <= ColorBrightWhite:
		// Bright variants start at 9
		return strconv.Itoa(int(c-ColorBrightRed) + 9)
	case c == ColorOrange:
		return "208"
	case c == ColorGray:
		return "245"
	}
	return ""
}
