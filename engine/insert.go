package engine

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
)

// insertHandler splices typed characters into the buffer
type insertHandler struct {
	e *Engine
}

func (h *insertHandler) HandleKey(key input.Key) bool {
	e := h.e
	switch key.Name {
	case input.KeyEnter:
		e.splitLine()
		return true
	case input.KeyBackspace:
		e.backspace()
		return true
	case input.KeyDelete:
		e.deleteForward()
		return true
	case input.KeyTab:
		e.insertRune('\t')
		return true
	}

	if !key.Printable {
		if entry, ok := e.keys.SpecialKeys[key.Name]; ok && entry.Behavior == input.BehaviorMotion {
			e.applyMotion(entry.Motion)
			return true
		}
		return false
	}

	e.insertRune(key.Rune)
	return true
}

// beginInsert positions the cursor for an insert-family key and enters insert mode
func (e *Engine) beginInsert(op input.InsertOp) {
	row := e.cursor.Row
	switch op {
	case input.InsertAfter:
		if e.buf.LineLen(row) > 0 {
			e.cursor.Col++
		}
	case input.InsertLineStart:
		e.cursor.Col = e.buf.FirstNonBlank(row)
	case input.InsertLineEnd:
		e.cursor.Col = e.buf.LineLen(row)
	case input.InsertOpenBelow:
		e.buf.InsertLine(row+1, "")
		e.cursor.Row, e.cursor.Col = row+1, 0
	case input.InsertOpenAbove:
		e.buf.InsertLine(row, "")
		e.cursor.Col = 0
	}
	e.cursor.GoalCol = e.cursor.Col
	e.setMode(core.ModeInsert)
}

func (e *Engine) insertRune(r rune) {
	e.buf.InsertRune(e.cursor.Row, e.cursor.Col, r)
	e.cursor.Col++
	e.cursor.GoalCol = e.cursor.Col
}

// backspace removes the previous character, joining onto the previous line at column 0
func (e *Engine) backspace() {
	row, col := e.cursor.Row, e.cursor.Col
	if col > 0 {
		e.buf.DeleteInLine(row, col-1, col)
		e.cursor.Col--
	} else if row > 0 {
		e.cursor.Col = e.buf.JoinLines(row - 1)
		e.cursor.Row--
	}
	e.cursor.GoalCol = e.cursor.Col
}

// deleteForward removes the character under the cursor, joining the next
// line at end of line
func (e *Engine) deleteForward() {
	row, col := e.cursor.Row, e.cursor.Col
	if col < e.buf.LineLen(row) {
		e.buf.DeleteInLine(row, col, col+1)
		return
	}
	e.buf.JoinLines(row)
}

func (e *Engine) splitLine() {
	e.buf.SplitLine(e.cursor.Row, e.cursor.Col)
	e.cursor = core.Cursor{Row: e.cursor.Row + 1, Col: 0, GoalCol: 0}
}
