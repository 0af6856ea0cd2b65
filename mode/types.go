package mode

import (
	"github.com/21andrewchang/vimgod/core"
)

// RangeType distinguishes character-wise and line-wise motions
type RangeType uint8

const (
	RangeChar RangeType = iota
	RangeLine
)

// MotionStyle controls whether an operator includes the motion's end character
type MotionStyle uint8

const (
	StyleExclusive MotionStyle = iota
	StyleInclusive
)

// MotionResult is the outcome of resolving a motion without moving the cursor
// Applying it with OpMove turns a ghost preview into a real move
type MotionResult struct {
	Start, End core.Position
	Type       RangeType
	Style      MotionStyle

	// Goal column recorded on the cursor after the move
	Goal int

	// Valid is false when the motion would not move the cursor
	Valid bool

	// AtBufferEnd is set when a forward word scan ran off the last line
	AtBufferEnd bool
}

// Context carries the read-only inputs a motion needs
type Context struct {
	Buf *core.Buffer

	// HalfPage is the row step for PageUp/PageDown
	HalfPage int

	// PastEnd allows the resolved column to equal the line length (insert mode)
	PastEnd bool
}

// MotionFunc resolves a motion from the cursor. count is 0 when none was typed
type MotionFunc func(ctx *Context, cur core.Cursor, count int) MotionResult

// CharMotionFunc resolves a motion that takes a target character (f/F/t/T)
type CharMotionFunc func(ctx *Context, cur core.Cursor, target rune, count int) MotionResult

// Span returns the half-open range an operator acts on
func (m MotionResult) Span() (from, to core.Position) {
	from = core.MinPos(m.Start, m.End)
	to = core.MaxPos(m.Start, m.End)
	if m.Style == StyleInclusive {
		to.Col++
	}
	return from, to
}

func repeatCount(count int) int {
	if count < 1 {
		return 1
	}
	return count
}
