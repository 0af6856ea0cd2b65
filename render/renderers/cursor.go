package renderers

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/engine"
	"github.com/21andrewchang/vimgod/render"
	"github.com/gdamore/tcell/v2"
)

// CursorRenderer draws the block cursor over the text
type CursorRenderer struct {
	eng *engine.Engine
}

// NewCursorRenderer creates a new cursor renderer
func NewCursorRenderer(eng *engine.Engine) *CursorRenderer {
	return &CursorRenderer{eng: eng}
}

// IsVisible returns false while the command line owns the cursor
func (r *CursorRenderer) IsVisible() bool {
	return r.eng.Mode() != core.ModeCommand
}

// Render draws the cursor
func (r *CursorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y, ok := ctx.ScreenRow(ctx.Cursor.Row)
	if !ok {
		return
	}
	x := ctx.ScreenX(ctx.Cursor.Row, ctx.Cursor.Col)

	bg := render.RgbCursorNormal
	if ctx.Mode == core.ModeInsert {
		bg = render.RgbCursorInsert
	}

	cell, _ := buf.Get(x, y)
	ch := cell.Rune
	if ch == 0 || ch == '\t' {
		ch = ' '
	}
	buf.Set(x, y, ch, render.DefaultStyle.Foreground(tcell.ColorBlack).Background(bg))
}
