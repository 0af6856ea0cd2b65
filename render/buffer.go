package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one screen position in the render buffer
// A wide rune occupies its cell plus a tail cell that is never flushed
type Cell struct {
	Rune  rune
	Style tcell.Style
	tail  bool
}

// RenderBuffer is the frame compositor renderers draw into before flush
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: DefaultStyle}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Width returns the buffer width in cells
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *RenderBuffer) Height() int { return b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y)
func (b *RenderBuffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Set writes a rune and style, replacing the cell
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetBg changes only the background, keeping rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Style = c.Style.Background(bg)
}

// SetStyle replaces the style, keeping the rune
func (b *RenderBuffer) SetStyle(x, y int, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Style = style
}

// DrawString writes s from (x, y) clipped to maxX and returns the cells used
// Tabs expand to spaces up to the next tab stop
func (b *RenderBuffer) DrawString(x, y, maxX int, s string, style tcell.Style) int {
	maxX = min(maxX, b.width)
	cx := x
	for _, r := range s {
		w := RuneWidth(r, cx-x)
		if cx+w > maxX {
			break
		}
		if r == '\t' {
			for i := 0; i < w; i++ {
				b.Set(cx+i, y, ' ', style)
			}
		} else {
			b.Set(cx, y, r, style)
			for i := 1; i < w; i++ {
				if b.inBounds(cx+i, y) {
					b.cells[y*b.width+cx+i] = Cell{Style: style, tail: true}
				}
			}
		}
		cx += w
	}
	return cx - x
}

// FlushToScreen copies the buffer onto the screen; the caller calls Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.tail {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, c.Style)
		}
	}
}
