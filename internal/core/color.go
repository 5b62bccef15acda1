package core

import "math/bits"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

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

// tilePalette is indexed by log2 of the tile value.
var tilePalette = []Color{
	ColorGray,          // 1 (unused)
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
	ColorCyan,          // 2048
	ColorBrightBlue,    // 4096
	ColorBlue,          // 8192
	ColorBrightMagenta, // 16384
}

// TileColor picks the display color for a tile value.
// Values past the palette are drawn magenta.
func TileColor(value uint32) Color {
	if value == 0 {
		return ColorDefault
	}
	idx := bits.Len32(value) - 1
	if idx >= len(tilePalette) {
		return ColorMagenta
	}
	return tilePalette[idx]
}
