package mode

import (
	"github.com/21andrewchang/vimgod/core"
)

// OpMove updates the cursor from a motion result
func OpMove(cur *core.Cursor, result MotionResult) {
	if !result.Valid {
		return
	}
	cur.Row = result.End.Row
	cur.Col = result.End.Col
	cur.GoalCol = result.Goal
}

// OpDelete deletes the range covered by a motion result
// Line-wise results remove whole rows; character-wise results remove the
// normalized half-open span. Returns the resting cursor position and whether
// the buffer changed
func OpDelete(b *core.Buffer, result MotionResult) (core.Position, bool) {
	if !result.Valid {
		return result.Start, false
	}
	if result.Type == RangeLine {
		top := min(result.Start.Row, result.End.Row)
		bottom := max(result.Start.Row, result.End.Row)
		return DeleteLines(b, top, bottom-top+1)
	}
	from, to := result.Span()
	return DeleteRange(b, from, to)
}

// DeleteRange removes [from, to) after ordering the endpoints
// The cursor rests at the range start, clamped to the new line
func DeleteRange(b *core.Buffer, from, to core.Position) (core.Position, bool) {
	if to.Less(from) {
		from, to = to, from
	}
	from = b.Clamp(from, true)
	to = b.Clamp(to, true)
	if from == to {
		return b.Clamp(from, false), false
	}
	b.DeleteSpan(from, to)
	return b.Clamp(from, false), true
}

// DeleteLines removes up to count rows starting at row
// The cursor rests at column 0 of the row that took their place
func DeleteLines(b *core.Buffer, row, count int) (core.Position, bool) {
	n := b.DeleteLines(row, max(1, count))
	return core.Position{Row: b.ClampRow(row), Col: 0}, n > 0
}

// ClipWordForward applies the 'dw' special case: a forward word target on a
// later line is pulled back to the end of the starting line
func ClipWordForward(b *core.Buffer, result MotionResult) MotionResult {
	if result.End.Row <= result.Start.Row {
		return result
	}
	result.End = core.Position{Row: result.Start.Row, Col: b.LineLen(result.Start.Row)}
	result.Style = StyleExclusive
	result.Valid = result.End != result.Start
	return result
}
