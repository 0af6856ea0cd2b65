package renderers

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/render"
	"github.com/gdamore/tcell/v2"
)

// SelectionRenderer highlights the visual or line selection
// Empty lines and the line break inside a char selection show as one cell
type SelectionRenderer struct{}

// NewSelectionRenderer creates a selection renderer
func NewSelectionRenderer() *SelectionRenderer {
	return &SelectionRenderer{}
}

// Render implements SystemRenderer
func (s *SelectionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Selection == nil {
		return
	}
	highlightSelection(ctx, buf, *ctx.Selection, render.RgbSelection)
}

// highlightSelection paints the background of every selected cell on screen
func highlightSelection(ctx render.RenderContext, buf *render.RenderBuffer, sel core.Selection, bg tcell.Color) {
	for y := 0; y < ctx.TextHeight; y++ {
		row := ctx.ViewBase + y
		if row >= ctx.Buf.LineCount() {
			return
		}
		if !sel.ContainsRow(row) {
			continue
		}
		line := ctx.Buf.Runes(row)
		for col := 0; col <= len(line); col++ {
			if sel.Kind == core.SelectionChar && !sel.Contains(core.Position{Row: row, Col: col}) {
				continue
			}
			if col == len(line) && len(line) > 0 && sel.Kind == core.SelectionLine {
				continue
			}
			x := ctx.ScreenX(row, col)
			w := 1
			if col < len(line) {
				w = render.RuneWidth(line[col], x-ctx.TextX)
			}
			for i := 0; i < w; i++ {
				buf.SetBg(x+i, y, bg)
			}
		}
	}
}
