package engine

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
	"github.com/21andrewchang/vimgod/mode"
)

// modeHandler processes one key for the active mode
// Returns false when the key was not consumed
type modeHandler interface {
	HandleKey(key input.Key) bool
}

// commandFunc handles key entries that navigate does not resolve itself
type commandFunc func(entry input.KeyEntry, r rune) bool

// HandleKeyDown feeds one key event to the engine and reports whether it
// was consumed. This is the only mutation entry point besides ResetDocument
func (e *Engine) HandleKeyDown(ev *input.KeyEvent) bool {
	if e.keys.Consumes(ev.Key) {
		ev.PreventDefault()
	}

	key := input.Normalize(ev)
	if key.IsModifier() {
		return false
	}

	handled := e.dispatch(key)
	if handled {
		ev.PreventDefault()
	}
	e.notifyUiState()
	return handled
}

func (e *Engine) dispatch(key input.Key) bool {
	if key.Name == input.KeyEscape {
		return e.escape()
	}
	h := e.handlers[e.current]
	if h == nil {
		return false
	}
	return h.HandleKey(key)
}

// escape cancels pending input and returns to normal mode
func (e *Engine) escape() bool {
	switch e.current {
	case core.ModeNormal:
		had := e.pending.active()
		e.pending.reset()
		return had
	case core.ModeInsert:
		e.cursor.Col = max(0, e.cursor.Col-1)
		e.cursor.GoalCol = e.cursor.Col
	}
	e.toNormal()
	return true
}

// navigate handles counts, motions, character search and the g prefix,
// which behave the same in normal, visual and line modes. Other entries
// go to the mode's command function
func (e *Engine) navigate(key input.Key, command commandFunc) bool {
	p := &e.pending
	switch p.state {
	case StateCharWait:
		return e.completeCharMotion(key)
	case StatePrefixG:
		return e.completePrefixG(key)
	}

	if !key.Printable {
		entry, ok := e.keys.SpecialKeys[key.Name]
		if !ok {
			e.pending.reset()
			return false
		}
		return e.runEntry(entry, 0, command)
	}

	// A leading 0 is a motion, never a count digit
	if d, ok := key.Digit(); ok && (d > 0 || p.count > 0) {
		p.pushDigit(d)
		return true
	}

	entry, ok := e.keys.NormalRunes[key.Rune]
	if !ok {
		e.pending.reset()
		return false
	}
	return e.runEntry(entry, key.Rune, command)
}

func (e *Engine) runEntry(entry input.KeyEntry, r rune, command commandFunc) bool {
	p := &e.pending
	switch entry.Behavior {
	case input.BehaviorMotion:
		e.applyMotion(entry.Motion)
		return true

	case input.BehaviorCharWait:
		p.charMotion = entry.Motion
		p.state = StateCharWait
		p.push(r)
		return true

	case input.BehaviorPrefix:
		p.state = StatePrefixG
		p.push(r)
		return true

	case input.BehaviorSpecial:
		switch entry.Special {
		case input.SpecialRepeatFind:
			e.repeatFind(false)
			return true
		case input.SpecialRepeatFindRev:
			e.repeatFind(true)
			return true
		}
	}
	return command(entry, r)
}

func (e *Engine) applyMotion(op input.MotionOp) {
	count := e.pending.effectiveCount()
	e.pending.reset()

	fn, ok := mode.Lookup(op)
	if !ok {
		return
	}
	mode.OpMove(&e.cursor, fn(e.motionContext(), e.cursor, count))
	e.syncSelection()
}

func (e *Engine) completeCharMotion(key input.Key) bool {
	// Non-printable keys leave the search waiting
	if !key.Printable {
		return true
	}
	p := &e.pending
	op := p.charMotion
	count := p.effectiveCount()
	p.reset()

	fn, ok := mode.LookupChar(op)
	if !ok {
		return true
	}
	e.lastSearch = mode.SearchFor(op, key.Rune)
	mode.OpMove(&e.cursor, fn(e.motionContext(), e.cursor, key.Rune, count))
	e.syncSelection()
	return true
}

func (e *Engine) completePrefixG(key input.Key) bool {
	entry, ok := e.keys.PrefixG[key.Rune]
	if !key.Printable || !ok || entry.Behavior != input.BehaviorMotion {
		e.pending.reset()
		return false
	}
	e.applyMotion(entry.Motion)
	return true
}

// repeatFind replays the last f/F/t/T search; no-op before any search
func (e *Engine) repeatFind(reverse bool) {
	count := e.pending.effectiveCount()
	e.pending.reset()
	if !e.lastSearch.Valid() {
		return
	}
	s := e.lastSearch
	if reverse {
		s = s.Reversed()
	}
	mode.OpMove(&e.cursor, s.Repeat(e.motionContext(), e.cursor, count))
	e.syncSelection()
}

// syncSelection recomputes the selection from the anchor and the cursor
func (e *Engine) syncSelection() {
	var sel core.Selection
	switch e.current {
	case core.ModeVisual:
		sel = core.CharSelection(e.charAnchor, e.cursor.Pos())
	case core.ModeLine:
		sel = core.LineSelection(e.lineAnchor, e.cursor.Row)
	default:
		return
	}
	e.selection = &sel
}

func (e *Engine) clearSelection() {
	e.selection = nil
	e.lineAnchor = -1
	e.charAnchor = core.Position{}
}
