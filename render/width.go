package render

import (
	"github.com/mattn/go-runewidth"
)

// TabWidth is the tab stop interval in cells
const TabWidth = 4

// RuneWidth returns the display width of r drawn at display column x
// Control and zero-width runes still take one cell so the cursor stays visible
func RuneWidth(r rune, x int) int {
	if r == '\t' {
		return TabWidth - x%TabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// DisplayColumn converts a rune column on line to a display column
// Columns past the end count one cell each
func DisplayColumn(line []rune, col int) int {
	x := 0
	for i := 0; i < col; i++ {
		if i < len(line) {
			x += RuneWidth(line[i], x)
		} else {
			x++
		}
	}
	return x
}
