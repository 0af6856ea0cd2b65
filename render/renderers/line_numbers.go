package renderers

import (
	"strconv"

	"github.com/21andrewchang/vimgod/render"
)

// LineNumbersRenderer draws absolute line numbers in the gutter
type LineNumbersRenderer struct{}

// NewLineNumbersRenderer creates a line numbers renderer
func NewLineNumbersRenderer() *LineNumbersRenderer {
	return &LineNumbersRenderer{}
}

// Render implements SystemRenderer
func (l *LineNumbersRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	numStyle := render.DefaultStyle.Foreground(render.RgbLineNumbers)
	currentStyle := render.DefaultStyle.Foreground(render.RgbLineCurrent)
	digits := ctx.TextX - 1

	for y := 0; y < ctx.TextHeight; y++ {
		row := ctx.ViewBase + y
		if row >= ctx.Buf.LineCount() {
			buf.Set(digits-1, y, '~', numStyle)
			continue
		}
		style := numStyle
		if row == ctx.Cursor.Row {
			style = currentStyle
		}
		num := strconv.Itoa(row + 1)
		buf.DrawString(digits-len(num), y, digits, num, style)
	}
}
