package renderers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/render"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Mode labels shown at the left of the status bar
const (
	ModeTextNormal  = " NORMAL "
	ModeTextInsert  = " INSERT "
	ModeTextVisual  = " VISUAL "
	ModeTextLine    = " V-LINE "
	ModeTextCommand = " COMMAND "
)

// lowTime is the remaining budget below which the timer turns red
const lowTime = 3 * time.Second

// StatusBarRenderer draws the status bar on the last screen row
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Height - 1
	if y < 0 {
		return
	}
	barStyle := render.DefaultStyle.Foreground(render.RgbStatusText).Background(render.RgbStatusBar)
	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, y, ' ', barStyle)
	}

	modeText, modeBg := modeLabel(ctx.Mode)
	x := buf.DrawString(0, y, ctx.Width, modeText, barStyle.Foreground(tcell.ColorBlack).Background(modeBg))
	x++

	// Command line replaces the pending display while typing
	if ctx.Mode == core.ModeCommand {
		x += buf.DrawString(x, y, ctx.Width, ":"+ctx.Ui.CommandBuffer, barStyle)
		buf.SetBg(x, y, render.RgbCursorNormal)
		return
	}

	if pending := PendingText(ctx); pending != "" {
		x += buf.DrawString(x, y, ctx.Width, pending, barStyle.Foreground(render.RgbPending)) + 1
	}
	if msg := ctx.Round.Message; msg != "" {
		buf.DrawString(x, y, ctx.Width, msg, barStyle)
	}

	right := RoundText(ctx.Round)
	if right == "" {
		return
	}
	rx := ctx.Width - runewidth.StringWidth(right) - 1
	if rx <= x {
		return
	}
	timerStyle := barStyle.Foreground(render.RgbTimerOk)
	if ctx.Round.Budget > 0 && ctx.Round.Remaining < lowTime {
		timerStyle = barStyle.Foreground(render.RgbTimerLow)
	}
	buf.DrawString(rx, y, ctx.Width, right, timerStyle)
}

func modeLabel(m core.Mode) (string, tcell.Color) {
	switch m {
	case core.ModeInsert:
		return ModeTextInsert, render.RgbModeInsertBg
	case core.ModeVisual:
		return ModeTextVisual, render.RgbModeVisualBg
	case core.ModeLine:
		return ModeTextLine, render.RgbModeVisualBg
	case core.ModeCommand:
		return ModeTextCommand, render.RgbModeCommandBg
	}
	return ModeTextNormal, render.RgbModeNormalBg
}

// PendingText renders the typed count followed by the pending combo
func PendingText(ctx render.RenderContext) string {
	var sb strings.Builder
	if ctx.Ui.PendingCount > 0 {
		sb.WriteString(strconv.Itoa(ctx.Ui.PendingCount))
	}
	sb.WriteString(ctx.Ui.PendingCombo)
	return sb.String()
}

// RoundText renders "name i/n 12.3s score"; empty outside a drill
func RoundText(r render.RoundStatus) string {
	if r.Name == "" {
		return ""
	}
	parts := []string{r.Name}
	if r.Total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", r.Index, r.Total))
	}
	if r.Budget > 0 {
		parts = append(parts, fmt.Sprintf("%.1fs", max(r.Remaining, 0).Seconds()))
	}
	parts = append(parts, fmt.Sprintf("%d pts", r.Score))
	return strings.Join(parts, "  ")
}
