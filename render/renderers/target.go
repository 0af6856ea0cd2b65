package renderers

import (
	"github.com/21andrewchang/vimgod/render"
)

// TargetRenderer marks the drill target: a cell for cursor targets, a
// dimmed range for selection targets
type TargetRenderer struct {
	visible bool
}

// NewTargetRenderer creates a target marker renderer
func NewTargetRenderer() *TargetRenderer {
	return &TargetRenderer{visible: true}
}

// IsVisible implements VisibilityToggle
func (t *TargetRenderer) IsVisible() bool {
	return t.visible
}

// SetVisible toggles the marker, e.g. for blind rounds
func (t *TargetRenderer) SetVisible(v bool) {
	t.visible = v
}

// Render implements SystemRenderer
func (t *TargetRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if sel := ctx.Round.TargetSelection; sel != nil {
		highlightSelection(ctx, buf, *sel, render.RgbTargetRange)
	}

	p := ctx.Round.TargetCursor
	if p == nil || p.Row >= ctx.Buf.LineCount() {
		return
	}
	y, ok := ctx.ScreenRow(p.Row)
	if !ok {
		return
	}
	buf.SetBg(ctx.ScreenX(p.Row, p.Col), y, render.RgbTarget)
}
