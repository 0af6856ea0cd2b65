package renderers

import (
	"github.com/21andrewchang/vimgod/render"
)

// TextRenderer draws the visible buffer lines right of the gutter
type TextRenderer struct{}

// NewTextRenderer creates a buffer text renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render implements SystemRenderer
func (t *TextRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.TextHeight; y++ {
		row := ctx.ViewBase + y
		if row >= ctx.Buf.LineCount() {
			return
		}
		buf.DrawString(ctx.TextX, y, ctx.Width, ctx.Buf.Line(row), render.DefaultStyle)
	}
}
