package mode

import (
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
)

// SearchKind distinguishes landing on the character from stopping beside it
type SearchKind uint8

const (
	SearchFind SearchKind = iota // f/F
	SearchTill                   // t/T
)

// Search is the last character search, replayed by ';' and ','
type Search struct {
	Char    rune
	Forward bool
	Kind    SearchKind
}

// Valid reports whether a search has been recorded
func (s Search) Valid() bool {
	return s.Char != 0
}

// Reversed returns the same search in the opposite direction
func (s Search) Reversed() Search {
	s.Forward = !s.Forward
	return s
}

// SearchFor builds the Search recorded by a char motion op
func SearchFor(op input.MotionOp, ch rune) Search {
	switch op {
	case input.MotionFindBack:
		return Search{Char: ch, Forward: false, Kind: SearchFind}
	case input.MotionTillForward:
		return Search{Char: ch, Forward: true, Kind: SearchTill}
	case input.MotionTillBack:
		return Search{Char: ch, Forward: false, Kind: SearchTill}
	}
	return Search{Char: ch, Forward: true, Kind: SearchFind}
}

var charLUT = map[input.MotionOp]CharMotionFunc{
	input.MotionFindForward: MotionFindForward,
	input.MotionFindBack:    MotionFindBack,
	input.MotionTillForward: MotionTillForward,
	input.MotionTillBack:    MotionTillBack,
}

// LookupChar returns the resolver for a char motion op
func LookupChar(op input.MotionOp) (CharMotionFunc, bool) {
	fn, ok := charLUT[op]
	return fn, ok
}

// MotionFindForward implements 'f'
func MotionFindForward(ctx *Context, cur core.Cursor, target rune, count int) MotionResult {
	return Search{Char: target, Forward: true, Kind: SearchFind}.resolve(ctx, cur, count, false)
}

// MotionFindBack implements 'F'
func MotionFindBack(ctx *Context, cur core.Cursor, target rune, count int) MotionResult {
	return Search{Char: target, Forward: false, Kind: SearchFind}.resolve(ctx, cur, count, false)
}

// MotionTillForward implements 't'
func MotionTillForward(ctx *Context, cur core.Cursor, target rune, count int) MotionResult {
	return Search{Char: target, Forward: true, Kind: SearchTill}.resolve(ctx, cur, count, false)
}

// MotionTillBack implements 'T'
func MotionTillBack(ctx *Context, cur core.Cursor, target rune, count int) MotionResult {
	return Search{Char: target, Forward: false, Kind: SearchTill}.resolve(ctx, cur, count, false)
}

// Repeat replays s from the cursor. A repeated till search skips the
// character it is already parked beside
func (s Search) Repeat(ctx *Context, cur core.Cursor, count int) MotionResult {
	return s.resolve(ctx, cur, count, true)
}

func (s Search) resolve(ctx *Context, cur core.Cursor, count int, repeat bool) MotionResult {
	none := MotionResult{Start: cur.Pos(), End: cur.Pos(), Goal: cur.Goal()}
	if !s.Valid() {
		return none
	}

	skip := 1
	if repeat && s.Kind == SearchTill {
		skip = 2
	}

	line := ctx.Buf.Runes(cur.Row)
	x, ok := findCharOnLine(line, cur.Col, s.Char, repeatCount(count), s.Forward, skip)
	if !ok {
		return none
	}

	style := StyleInclusive
	if s.Kind == SearchTill {
		if s.Forward {
			x--
		} else {
			x++
		}
	}
	if !s.Forward {
		style = StyleExclusive
	}

	r := horizontalTo(cur, x, style)
	// A found character always produces an operator range, even for a till
	// search parked beside it
	r.Valid = true
	return r
}
