package render

import (
	"time"

	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/engine"
)

// RoundStatus is the drill state shown alongside the buffer
type RoundStatus struct {
	Name      string
	Index     int // 1-based
	Total     int
	Remaining time.Duration
	Budget    time.Duration
	Score     int
	Message   string

	// At most one target kind is set
	TargetCursor    *core.Position
	TargetSelection *core.Selection
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Text area: rows [0, TextHeight) starting at column TextX after the gutter
	TextX      int
	TextHeight int

	Buf       *core.Buffer
	Cursor    core.Cursor
	Mode      core.Mode
	Selection *core.Selection
	Ui        engine.UiState

	// ViewBase is the buffer row drawn on screen row 0
	ViewBase int

	Round RoundStatus
}

// NewRenderContext snapshots the engine's exposed state for one frame
func NewRenderContext(e *engine.Engine, width, height int, round RoundStatus) RenderContext {
	ctx := RenderContext{
		Width:      width,
		Height:     height,
		Buf:        e.Buffer(),
		Cursor:     e.Cursor(),
		Mode:       e.Mode(),
		Ui:         e.UiState(),
		ViewBase:   e.ViewBase(),
		Round:      round,
		TextX:      GutterWidth(e.Buffer().LineCount()),
		TextHeight: max(0, height-1),
	}
	if rows := e.MaxRows(); rows > 0 {
		ctx.TextHeight = min(ctx.TextHeight, rows)
	}
	if sel, ok := e.Selection(); ok {
		ctx.Selection = &sel
	}
	return ctx
}

// GutterWidth is the line-number column width for a buffer of n lines,
// including one separating space
func GutterWidth(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits + 1
}

// ScreenRow maps a buffer row to a screen row, false when scrolled out
func (c RenderContext) ScreenRow(row int) (int, bool) {
	y := row - c.ViewBase
	return y, y >= 0 && y < c.TextHeight
}

// ScreenX maps a rune column on a buffer row to a screen column
func (c RenderContext) ScreenX(row, col int) int {
	return c.TextX + DisplayColumn(c.Buf.Runes(row), col)
}
