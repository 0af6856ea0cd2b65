package mode

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
)

// motionLUT maps motion ops to their resolvers
var motionLUT = map[input.MotionOp]MotionFunc{
	input.MotionLeft:          MotionLeft,
	input.MotionRight:         MotionRight,
	input.MotionUp:            MotionUp,
	input.MotionDown:          MotionDown,
	input.MotionWordForward:   MotionWordForward,
	input.MotionWORDForward:   MotionWORDForward,
	input.MotionWordBack:      MotionWordBack,
	input.MotionWORDBack:      MotionWORDBack,
	input.MotionWordEnd:       MotionWordEnd,
	input.MotionWORDEnd:       MotionWORDEnd,
	input.MotionLineStart:     MotionLineStart,
	input.MotionLineEnd:       MotionLineEnd,
	input.MotionFirstNonBlank: MotionFirstNonBlank,
	input.MotionFileStart:     MotionFileStart,
	input.MotionFileEnd:       MotionFileEnd,
	input.MotionMatchBracket:  MotionMatchBracket,
	input.MotionHalfPageUp:    MotionHalfPageUp,
	input.MotionHalfPageDown:  MotionHalfPageDown,
}

// Lookup returns the resolver for a motion op
func Lookup(op input.MotionOp) (MotionFunc, bool) {
	fn, ok := motionLUT[op]
	return fn, ok
}

// horizontalTo builds a same-row result that records col as the goal
func horizontalTo(cur core.Cursor, col int, style MotionStyle) MotionResult {
	return MotionResult{
		Start: cur.Pos(), End: core.Position{Row: cur.Row, Col: col},
		Type: RangeChar, Style: style,
		Goal:  col,
		Valid: col != cur.Col,
	}
}

// verticalTo builds a line-wise result that keeps the sticky goal column
func verticalTo(ctx *Context, cur core.Cursor, row int) MotionResult {
	b := ctx.Buf
	row = b.ClampRow(row)
	goal := cur.Goal()
	end := core.Position{Row: row, Col: b.ClampCol(row, goal, ctx.PastEnd)}
	return MotionResult{
		Start: cur.Pos(), End: end,
		Type: RangeLine, Style: StyleInclusive,
		Goal:  goal,
		Valid: end != cur.Pos(),
	}
}

// MotionLeft implements 'h'
func MotionLeft(ctx *Context, cur core.Cursor, count int) MotionResult {
	col := max(0, cur.Col-repeatCount(count))
	return horizontalTo(cur, col, StyleExclusive)
}

// MotionRight implements 'l'
func MotionRight(ctx *Context, cur core.Cursor, count int) MotionResult {
	col := ctx.Buf.ClampCol(cur.Row, cur.Col+repeatCount(count), ctx.PastEnd)
	if col < cur.Col {
		col = cur.Col
	}
	return horizontalTo(cur, col, StyleExclusive)
}

// MotionUp implements 'k'
func MotionUp(ctx *Context, cur core.Cursor, count int) MotionResult {
	if cur.Row == 0 {
		return MotionResult{Start: cur.Pos(), End: cur.Pos(), Type: RangeLine, Goal: cur.Goal()}
	}
	return verticalTo(ctx, cur, cur.Row-repeatCount(count))
}

// MotionDown implements 'j'
func MotionDown(ctx *Context, cur core.Cursor, count int) MotionResult {
	if cur.Row == ctx.Buf.LastRow() {
		return MotionResult{Start: cur.Pos(), End: cur.Pos(), Type: RangeLine, Goal: cur.Goal()}
	}
	return verticalTo(ctx, cur, cur.Row+repeatCount(count))
}

// MotionHalfPageUp implements PageUp
func MotionHalfPageUp(ctx *Context, cur core.Cursor, count int) MotionResult {
	return MotionUp(ctx, cur, repeatCount(count)*max(1, ctx.HalfPage))
}

// MotionHalfPageDown implements PageDown
func MotionHalfPageDown(ctx *Context, cur core.Cursor, count int) MotionResult {
	return MotionDown(ctx, cur, repeatCount(count)*max(1, ctx.HalfPage))
}

// MotionFileStart implements 'gg', or line N with a count
func MotionFileStart(ctx *Context, cur core.Cursor, count int) MotionResult {
	row := 0
	if count > 0 {
		row = count - 1
	}
	return verticalTo(ctx, cur, row)
}

// MotionFileEnd implements 'G', or line N with a count
func MotionFileEnd(ctx *Context, cur core.Cursor, count int) MotionResult {
	row := ctx.Buf.LastRow()
	if count > 0 {
		row = count - 1
	}
	return verticalTo(ctx, cur, row)
}

// MotionLineStart implements '0'
func MotionLineStart(ctx *Context, cur core.Cursor, count int) MotionResult {
	r := horizontalTo(cur, 0, StyleExclusive)
	r.Valid = true
	return r
}

// MotionFirstNonBlank implements '^'
func MotionFirstNonBlank(ctx *Context, cur core.Cursor, count int) MotionResult {
	r := horizontalTo(cur, ctx.Buf.FirstNonBlank(cur.Row), StyleExclusive)
	r.Valid = true
	return r
}

// MotionLineEnd implements '$'; a count moves count-1 lines down first
func MotionLineEnd(ctx *Context, cur core.Cursor, count int) MotionResult {
	b := ctx.Buf
	row := b.ClampRow(cur.Row + repeatCount(count) - 1)
	end := core.Position{Row: row, Col: b.ClampCol(row, core.GoalEOL, ctx.PastEnd)}
	return MotionResult{
		Start: cur.Pos(), End: end,
		Type: RangeChar, Style: StyleInclusive,
		Goal:  core.GoalEOL,
		Valid: true,
	}
}

// MotionMatchBracket implements '%': the first bracket at or after the
// cursor on its line jumps to its partner
func MotionMatchBracket(ctx *Context, cur core.Cursor, count int) MotionResult {
	b := ctx.Buf
	line := b.Runes(cur.Row)
	for x := cur.Col; x < len(line); x++ {
		if !isBracket(line[x]) {
			continue
		}
		match, ok := findMatchingBracket(b, core.Position{Row: cur.Row, Col: x})
		if !ok {
			break
		}
		return MotionResult{
			Start: cur.Pos(), End: match,
			Type: RangeChar, Style: StyleInclusive,
			Goal:  match.Col,
			Valid: true,
		}
	}
	return MotionResult{Start: cur.Pos(), End: cur.Pos(), Goal: cur.Goal()}
}

func wordForward(big bool) MotionFunc {
	return func(ctx *Context, cur core.Cursor, count int) MotionResult {
		p := cur.Pos()
		atEnd := false
		for i := 0; i < repeatCount(count) && !atEnd; i++ {
			p, atEnd = findNextWordStart(ctx.Buf, p, big)
		}
		style := StyleExclusive
		if atEnd {
			style = StyleInclusive
		}
		return MotionResult{
			Start: cur.Pos(), End: p,
			Type: RangeChar, Style: style,
			Goal:        p.Col,
			Valid:       p != cur.Pos(),
			AtBufferEnd: atEnd,
		}
	}
}

func wordBack(big bool) MotionFunc {
	return func(ctx *Context, cur core.Cursor, count int) MotionResult {
		p := cur.Pos()
		for i := 0; i < repeatCount(count); i++ {
			p = findPrevWordStart(ctx.Buf, p, big)
		}
		return MotionResult{
			Start: cur.Pos(), End: p,
			Type: RangeChar, Style: StyleExclusive,
			Goal:  p.Col,
			Valid: p != cur.Pos(),
		}
	}
}

func wordEnd(big bool) MotionFunc {
	return func(ctx *Context, cur core.Cursor, count int) MotionResult {
		p := cur.Pos()
		for i := 0; i < repeatCount(count); i++ {
			p = findWordEnd(ctx.Buf, p, big)
		}
		return MotionResult{
			Start: cur.Pos(), End: p,
			Type: RangeChar, Style: StyleInclusive,
			Goal:  p.Col,
			Valid: p != cur.Pos(),
		}
	}
}

// Word motion resolvers; the WORD variants treat punctuation as word characters
var (
	MotionWordForward = wordForward(false)
	MotionWORDForward = wordForward(true)
	MotionWordBack    = wordBack(false)
	MotionWORDBack    = wordBack(true)
	MotionWordEnd     = wordEnd(false)
	MotionWORDEnd     = wordEnd(true)
)
