package engine

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/mode"
)

// normalHandler handles navigation and the delete operator
type normalHandler struct {
	e *Engine
}

func (h *normalHandler) HandleKey(key input.Key) bool {
	e := h.e
	switch e.pending.state {
	case StateOperatorWait:
		return e.operatorTarget(key)
	case StateOperatorCharWait:
		return e.operatorCharTarget(key)
	case StateOperatorObjectWait:
		return e.operatorObjectTarget(key)
	}
	return e.navigate(key, h.command)
}

func (h *normalHandler) command(entry input.KeyEntry, r rune) bool {
	e := h.e
	switch entry.Behavior {
	case input.BehaviorOperator:
		e.pending.beginOperator(r)
		return true

	case input.BehaviorModeSwitch:
		e.pending.reset()
		switch entry.ModeTarget {
		case input.ModeTargetVisual:
			e.charAnchor = e.cursor.Pos()
			e.setMode(core.ModeVisual)
		case input.ModeTargetLine:
			e.lineAnchor = e.cursor.Row
			e.setMode(core.ModeLine)
		case input.ModeTargetCommand:
			e.commandBuffer = e.commandBuffer[:0]
			e.setMode(core.ModeCommand)
			return true
		}
		e.syncSelection()
		return true

	case input.BehaviorInsert:
		e.pending.reset()
		// Swallowed without effect when insertion is disabled
		if e.cfg.InsertModeEnabled {
			e.beginInsert(entry.Insert)
		}
		return true

	case input.BehaviorSpecial:
		count := max(1, e.pending.effectiveCount())
		e.pending.reset()
		switch entry.Special {
		case input.SpecialDeleteChar:
			e.deleteChars(count)
		case input.SpecialDeleteToEnd:
			e.deleteToLineEnd(count)
		}
		return true
	}

	e.pending.reset()
	return false
}

// operatorTarget resolves the key after d
func (e *Engine) operatorTarget(key input.Key) bool {
	p := &e.pending
	if !key.Printable {
		p.reset()
		return false
	}
	if d, ok := key.Digit(); ok && (d > 0 || p.count > 0) {
		p.pushDigit(d)
		return true
	}

	// Doubled operator (dd)
	if entry, ok := e.keys.NormalRunes[key.Rune]; ok && entry.Behavior == input.BehaviorOperator {
		count := p.effectiveCount()
		p.reset()
		rest, _ := mode.DeleteLines(e.buf, e.cursor.Row, max(1, count))
		e.afterDelete(rest)
		return true
	}

	entry, ok := e.keys.OperatorTargets[key.Rune]
	if !ok {
		// Unrecognized target cancels the combo without editing
		p.reset()
		return false
	}

	switch entry.Behavior {
	case input.BehaviorCharWait:
		p.charMotion = entry.Motion
		p.state = StateOperatorCharWait
		p.push(key.Rune)
		return true

	case input.BehaviorObject:
		p.state = StateOperatorObjectWait
		p.push(key.Rune)
		return true

	case input.BehaviorMotion:
		count := p.effectiveCount()
		p.reset()
		fn, ok := mode.Lookup(entry.Motion)
		if !ok {
			return false
		}
		result := fn(e.motionContext(), e.cursor, count)
		if entry.Motion == input.MotionWordForward || entry.Motion == input.MotionWORDForward {
			result = mode.ClipWordForward(e.buf, result)
		}
		e.deleteMotion(result)
		return true
	}

	p.reset()
	return false
}

// operatorCharTarget completes df/dF/dt/dT
// A named key abandons the combo instead of waiting for a character
func (e *Engine) operatorCharTarget(key input.Key) bool {
	p := &e.pending
	if !key.Printable {
		p.reset()
		return false
	}
	op := p.charMotion
	count := p.effectiveCount()
	p.reset()

	fn, ok := mode.LookupChar(op)
	if !ok {
		return true
	}
	e.lastSearch = mode.SearchFor(op, key.Rune)
	e.deleteMotion(fn(e.motionContext(), e.cursor, key.Rune, count))
	return true
}

// operatorObjectTarget completes di{obj}
func (e *Engine) operatorObjectTarget(key input.Key) bool {
	e.pending.reset()
	if !key.Printable || !mode.IsObjectKey(key.Rune) {
		return false
	}
	from, to, ok := mode.ResolveInner(e.buf, e.cursor.Pos(), key.Rune)
	if !ok {
		return true
	}
	if rest, changed := mode.DeleteRange(e.buf, from, to); changed {
		e.afterDelete(rest)
	}
	return true
}

func (e *Engine) deleteMotion(result mode.MotionResult) {
	if rest, changed := mode.OpDelete(e.buf, result); changed {
		e.afterDelete(rest)
	}
}

// deleteChars implements x: count characters from the cursor, same line only
func (e *Engine) deleteChars(count int) {
	row, col := e.cursor.Row, e.cursor.Col
	to := min(col+count, e.buf.LineLen(row))
	rest, changed := mode.DeleteRange(e.buf, core.Position{Row: row, Col: col}, core.Position{Row: row, Col: to})
	if changed {
		e.afterDelete(rest)
	}
}

// deleteToLineEnd implements D; a count extends it over count-1 further lines
func (e *Engine) deleteToLineEnd(count int) {
	e.deleteMotion(mode.MotionLineEnd(e.motionContext(), e.cursor, count))
}
