package core

import "math"

// GoalNone marks an unset goal column
const GoalNone = -1

// GoalEOL pins vertical motion to the end of every line ('$')
const GoalEOL = math.MaxInt32

// Position is a row/column coordinate in a buffer
type Position struct {
	Row, Col int
}

// Compare orders positions lexicographically by (Row, Col)
func (p Position) Compare(q Position) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p comes before q
func (p Position) Less(q Position) bool {
	return p.Compare(q) < 0
}

// MinPos returns the earlier of two positions
func MinPos(a, b Position) Position {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxPos returns the later of two positions
func MaxPos(a, b Position) Position {
	if a.Less(b) {
		return b
	}
	return a
}

// Cursor is the caret position plus the sticky goal column
// GoalCol is GoalNone when unset
type Cursor struct {
	Row, Col int
	GoalCol  int
}

// NewCursor returns a cursor at p with no goal column
func NewCursor(p Position) Cursor {
	return Cursor{Row: p.Row, Col: p.Col, GoalCol: GoalNone}
}

// Pos returns the cursor position without the goal column
func (c Cursor) Pos() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// HasGoal reports whether a goal column is set
func (c Cursor) HasGoal() bool {
	return c.GoalCol != GoalNone
}

// Goal returns the goal column, defaulting to the current column
func (c Cursor) Goal() int {
	if c.GoalCol == GoalNone {
		return c.Col
	}
	return c.GoalCol
}
