package engine

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/mode"
)

// selectHandler serves both selection modes; kind is ModeVisual or ModeLine
type selectHandler struct {
	e    *Engine
	kind core.Mode
}

func (h *selectHandler) HandleKey(key input.Key) bool {
	if h.e.pending.state == StateObjectWait {
		return h.e.selectObject(key)
	}
	return h.e.navigate(key, h.command)
}

func (h *selectHandler) command(entry input.KeyEntry, r rune) bool {
	e := h.e
	switch entry.Behavior {
	case input.BehaviorOperator:
		e.pending.reset()
		e.deleteSelection(false)
		return true

	case input.BehaviorSpecial:
		e.pending.reset()
		switch entry.Special {
		case input.SpecialDeleteChar:
			e.deleteSelection(false)
			return true
		case input.SpecialDeleteToEnd:
			e.deleteSelection(true)
			return true
		}

	case input.BehaviorModeSwitch:
		e.pending.reset()
		switch entry.ModeTarget {
		case input.ModeTargetVisual:
			if h.kind == core.ModeVisual {
				e.toNormal()
				return true
			}
			e.charAnchor = e.buf.Clamp(core.Position{Row: e.lineAnchor, Col: e.cursor.Col}, false)
			e.lineAnchor = -1
			e.setMode(core.ModeVisual)
		case input.ModeTargetLine:
			if h.kind == core.ModeLine {
				e.toNormal()
				return true
			}
			e.lineAnchor = e.charAnchor.Row
			e.setMode(core.ModeLine)
		case input.ModeTargetCommand:
			e.toNormal()
			e.setMode(core.ModeCommand)
			return true
		}
		e.syncSelection()
		return true

	case input.BehaviorInsert:
		if h.kind == core.ModeVisual && entry.Insert == input.InsertBefore {
			e.pending.reset()
			e.pending.state = StateObjectWait
			e.pending.push(r)
			return true
		}
	}

	e.pending.reset()
	return false
}

// selectObject replaces the selection with an inner text object
func (e *Engine) selectObject(key input.Key) bool {
	e.pending.reset()
	if !key.Printable || !mode.IsObjectKey(key.Rune) {
		return false
	}
	from, to, ok := mode.ResolveInner(e.buf, e.cursor.Pos(), key.Rune)
	if !ok {
		return true
	}

	last := core.Position{Row: to.Row, Col: to.Col - 1}
	if to.Col == 0 && to.Row > from.Row {
		last = core.Position{Row: to.Row - 1, Col: e.buf.LineLen(to.Row - 1)}
	}
	last = e.buf.Clamp(last, false)

	e.charAnchor = from
	e.cursor = core.Cursor{Row: last.Row, Col: last.Col, GoalCol: last.Col}
	e.selection = &core.Selection{Kind: core.SelectionChar, Start: from, End: to}
	return true
}

// deleteSelection removes the selection and returns to normal mode
// With wholeLines set, a character selection is widened to its rows
func (e *Engine) deleteSelection(wholeLines bool) {
	sel, ok := e.Selection()
	if !ok {
		e.toNormal()
		return
	}

	var rest core.Position
	switch {
	case sel.Kind == core.SelectionLine:
		rest, _ = mode.DeleteLines(e.buf, sel.StartRow, sel.EndRow-sel.StartRow+1)
	case wholeLines:
		rest, _ = mode.DeleteLines(e.buf, sel.Start.Row, sel.End.Row-sel.Start.Row+1)
	default:
		rest, _ = mode.DeleteRange(e.buf, sel.Start, sel.End)
	}
	e.afterDelete(rest)
}
