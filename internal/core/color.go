package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// tileColors cycles through distinct colors as tile values double.
var tileColors = [...]Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorBrightRed,     // 32
	ColorRed,           // 64
	ColorBrightYellow,  // 128
	ColorBrightGreen,   // 256
	ColorGreen,         // 512
	ColorBrightCyan,    // 1024
	ColorBrightMagenta, // 2048
	ColorMagenta,       // 4096
	ColorBrightBlue,    // 8192 and beyond
}

// TileColor returns the display color for a tile value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	idx := -1
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tileColors) {
		idx = len(tileColors) - 1
	}
	return tileColors[idx]
}
