package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for table elements.
const (
	ColorDefault Color = iota
	ColorRed           // red suits
	ColorBlack         // black suits (rendered bright white on the felt)
	ColorGreen         // felt markings, empty slots
	ColorYellow        // highlights, in-flight cards
	ColorBlue          // card backs
	ColorGray          // HUD text
)
