package mode

import (
	"testing"

	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/input"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func newCtx(text string) *Context {
	return &Context{Buf: core.NewBuffer(text), HalfPage: 2}
}

func at(row, col int) core.Cursor {
	return core.NewCursor(core.Position{Row: row, Col: col})
}

func pos(row, col int) core.Position {
	return core.Position{Row: row, Col: col}
}

func TestMotionLeftRight(t *testing.T) {
	ctx := newCtx("hello")

	r := MotionLeft(ctx, at(0, 3), 2)
	assert.Equal(t, pos(0, 1), r.End)
	assert.Equal(t, 1, r.Goal)

	r = MotionLeft(ctx, at(0, 0), 1)
	assert.False(t, r.Valid, "h at column 0 is a no-op")

	r = MotionRight(ctx, at(0, 3), 10)
	assert.Equal(t, pos(0, 4), r.End, "l clamps to the last character")

	r = MotionRight(ctx, at(0, 4), 1)
	assert.False(t, r.Valid)

	ctx.PastEnd = true
	r = MotionRight(ctx, at(0, 4), 1)
	assert.Equal(t, pos(0, 5), r.End, "insert mode may rest past the end")
}

func TestMotionVertical_StickyGoal(t *testing.T) {
	ctx := newCtx("short\n\nverylongline\nmid")
	cur := at(2, 7)
	cur.GoalCol = 7

	r := MotionUp(ctx, cur, 1)
	OpMove(&cur, r)
	assert.Equal(t, core.Cursor{Row: 1, Col: 0, GoalCol: 7}, cur)

	r = MotionUp(ctx, cur, 1)
	OpMove(&cur, r)
	assert.Equal(t, core.Cursor{Row: 0, Col: 4, GoalCol: 7}, cur)

	r = MotionDown(ctx, cur, 2)
	OpMove(&cur, r)
	assert.Equal(t, core.Cursor{Row: 2, Col: 7, GoalCol: 7}, cur)
}

func TestMotionVertical_DefaultsGoal(t *testing.T) {
	ctx := newCtx("abcdef\nab")
	cur := at(0, 4)

	OpMove(&cur, MotionDown(ctx, cur, 1))
	assert.Equal(t, core.Cursor{Row: 1, Col: 1, GoalCol: 4}, cur)
}

func TestMotionFileStartEnd(t *testing.T) {
	ctx := newCtx("one\ntwo\nthree\nfour")
	cur := at(1, 2)

	r := MotionFileEnd(ctx, cur, 0)
	assert.Equal(t, pos(3, 2), r.End)

	r = MotionFileEnd(ctx, cur, 3)
	assert.Equal(t, pos(2, 2), r.End, "count selects a 1-based line")

	r = MotionFileStart(ctx, cur, 0)
	assert.Equal(t, pos(0, 2), r.End)

	r = MotionFileStart(ctx, cur, 99)
	assert.Equal(t, 3, r.End.Row, "line count clamps")
}

func TestMotionHalfPage(t *testing.T) {
	ctx := newCtx("a\nb\nc\nd\ne\nf")
	r := MotionHalfPageDown(ctx, at(0, 0), 0)
	assert.Equal(t, 2, r.End.Row)
	r = MotionHalfPageUp(ctx, at(5, 0), 2)
	assert.Equal(t, 1, r.End.Row)
}

func TestMotionLineEnds(t *testing.T) {
	ctx := newCtx("   indented line")

	r := MotionLineEnd(ctx, at(0, 0), 0)
	assert.Equal(t, pos(0, 15), r.End)
	assert.Equal(t, core.GoalEOL, r.Goal)

	r = MotionFirstNonBlank(ctx, at(0, 10), 0)
	assert.Equal(t, pos(0, 3), r.End)

	r = MotionLineStart(ctx, at(0, 10), 0)
	assert.Equal(t, pos(0, 0), r.End)
}

func TestMotionLineEnd_GoalFollowsEOL(t *testing.T) {
	ctx := newCtx("ab\nabcdef\nabcd")
	cur := at(0, 0)
	OpMove(&cur, MotionLineEnd(ctx, cur, 0))
	OpMove(&cur, MotionDown(ctx, cur, 1))
	assert.Equal(t, pos(1, 5), cur.Pos())
	OpMove(&cur, MotionDown(ctx, cur, 1))
	assert.Equal(t, pos(2, 3), cur.Pos())
}

func TestWordMotions(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		fn    MotionFunc
		from  core.Position
		count int
		want  core.Position
	}{
		{"w to next word", "foo bar baz", MotionWordForward, pos(0, 0), 1, pos(0, 4)},
		{"w counted", "foo bar baz", MotionWordForward, pos(0, 0), 2, pos(0, 8)},
		{"w stops at punctuation", "foo.bar", MotionWordForward, pos(0, 0), 1, pos(0, 3)},
		{"W skips punctuation", "foo.bar baz", MotionWORDForward, pos(0, 0), 1, pos(0, 8)},
		{"w crosses lines", "foo\n  bar", MotionWordForward, pos(0, 1), 1, pos(1, 2)},
		{"w stops on empty line", "foo\n\nbar", MotionWordForward, pos(0, 0), 1, pos(1, 0)},
		{"w leaves empty line", "foo\n\nbar", MotionWordForward, pos(1, 0), 1, pos(2, 0)},
		{"w at buffer end", "foo bar", MotionWordForward, pos(0, 4), 1, pos(0, 6)},
		{"b to word start", "foo bar", MotionWordBack, pos(0, 5), 1, pos(0, 4)},
		{"b to previous word", "foo bar", MotionWordBack, pos(0, 4), 1, pos(0, 0)},
		{"b crosses lines", "foo\nbar", MotionWordBack, pos(1, 0), 1, pos(0, 0)},
		{"b stops on empty line", "foo\n\nbar", MotionWordBack, pos(2, 0), 1, pos(1, 0)},
		{"B over punctuation", "a.b c", MotionWORDBack, pos(0, 4), 1, pos(0, 0)},
		{"b at origin", "foo", MotionWordBack, pos(0, 0), 1, pos(0, 0)},
		{"e to word end", "foo bar", MotionWordEnd, pos(0, 0), 1, pos(0, 2)},
		{"e from word end", "foo bar", MotionWordEnd, pos(0, 2), 1, pos(0, 6)},
		{"e counted", "a bb ccc", MotionWordEnd, pos(0, 0), 2, pos(0, 7)},
		{"E over punctuation", "a.b c", MotionWORDEnd, pos(0, 0), 1, pos(0, 2)},
		{"e unicode", "héllo wörld", MotionWordEnd, pos(0, 0), 1, pos(0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newCtx(tt.text)
			r := tt.fn(ctx, core.NewCursor(tt.from), tt.count)
			assert.Equal(t, tt.want, r.End)
		})
	}
}

func TestWordForward_AtBufferEndIsInclusive(t *testing.T) {
	ctx := newCtx("foo bar")
	r := MotionWordForward(ctx, at(0, 4), 1)
	assert.True(t, r.AtBufferEnd)
	assert.Equal(t, StyleInclusive, r.Style)
	from, to := r.Span()
	assert.Equal(t, pos(0, 4), from)
	assert.Equal(t, pos(0, 7), to)
}

func TestMotionMatchBracket(t *testing.T) {
	ctx := newCtx("if (a[1]) {\n  x\n}")

	r := MotionMatchBracket(ctx, at(0, 0), 0)
	assert.Equal(t, pos(0, 8), r.End, "first bracket after cursor")

	r = MotionMatchBracket(ctx, at(0, 5), 0)
	assert.Equal(t, pos(0, 7), r.End)

	r = MotionMatchBracket(ctx, at(0, 10), 0)
	assert.Equal(t, pos(2, 0), r.End, "match across lines")

	r = MotionMatchBracket(ctx, at(2, 0), 0)
	assert.Equal(t, pos(0, 10), r.End)

	r = MotionMatchBracket(ctx, at(1, 0), 0)
	assert.False(t, r.Valid)
}

func TestCharSearch(t *testing.T) {
	ctx := newCtx("a,b,c,d")

	r := MotionFindForward(ctx, at(0, 0), ',', 1)
	assert.Equal(t, pos(0, 1), r.End)

	r = MotionFindForward(ctx, at(0, 0), ',', 3)
	assert.Equal(t, pos(0, 5), r.End)

	r = MotionFindForward(ctx, at(0, 0), ',', 4)
	assert.False(t, r.Valid, "too few matches is a no-op")

	r = MotionFindForward(ctx, at(0, 0), 'z', 1)
	assert.False(t, r.Valid)

	r = MotionTillForward(ctx, at(0, 0), 'c', 1)
	assert.Equal(t, pos(0, 3), r.End)

	r = MotionFindBack(ctx, at(0, 6), 'b', 1)
	assert.Equal(t, pos(0, 2), r.End)

	r = MotionTillBack(ctx, at(0, 6), 'b', 1)
	assert.Equal(t, pos(0, 3), r.End)
}

func TestCharSearch_CurrentLineOnly(t *testing.T) {
	ctx := newCtx("abc\nxyz")
	r := MotionFindForward(ctx, at(0, 0), 'x', 1)
	assert.False(t, r.Valid)
}

func TestSearchRepeat_TillSkipsAdjacent(t *testing.T) {
	ctx := newCtx("a.b.c")
	s := SearchFor(input.MotionTillForward, '.')

	cur := at(0, 0)
	OpMove(&cur, MotionTillForward(ctx, cur, '.', 1))
	assert.Equal(t, 0, cur.Col, "till parks beside the adjacent dot")

	OpMove(&cur, s.Repeat(ctx, cur, 1))
	assert.Equal(t, 2, cur.Col)

	rev := s.Reversed()
	assert.False(t, rev.Forward)
	OpMove(&cur, rev.Repeat(ctx, cur, 1))
	assert.Equal(t, 2, cur.Col, "T. from col 2 parks beside col 1, skipped on repeat")
}

func TestSearchFor(t *testing.T) {
	assert.Equal(t, Search{Char: 'x', Forward: true, Kind: SearchFind}, SearchFor(input.MotionFindForward, 'x'))
	assert.Equal(t, Search{Char: 'x', Forward: false, Kind: SearchTill}, SearchFor(input.MotionTillBack, 'x'))
	assert.False(t, Search{}.Valid())
}

func TestLookupCoversKeyTable(t *testing.T) {
	kt := input.DefaultKeyTable()
	for r, e := range kt.NormalRunes {
		switch e.Behavior {
		case input.BehaviorMotion:
			if _, ok := Lookup(e.Motion); !ok {
				t.Errorf("Motion for %q has no resolver", r)
			}
		case input.BehaviorCharWait:
			if _, ok := LookupChar(e.Motion); !ok {
				t.Errorf("Char motion for %q has no resolver", r)
			}
		}
	}
}

func TestMotion_Property_BoundaryNoOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ().]{0,10}`), 1, 6).Draw(t, "lines")
		text := ""
		for i, l := range lines {
			if i > 0 {
				text += "\n"
			}
			text += "x" + l
		}
		ctx := newCtx(text)
		row := rapid.IntRange(0, ctx.Buf.LastRow()).Draw(t, "row")

		cur := at(row, 0)
		before := cur
		OpMove(&cur, MotionLeft(ctx, cur, rapid.IntRange(0, 5).Draw(t, "count")))
		if cur != before {
			t.Fatalf("h at column 0 moved cursor to %+v", cur)
		}

		col := rapid.IntRange(0, ctx.Buf.LineLen(0)-1).Draw(t, "col")
		cur = at(0, col)
		before = cur
		OpMove(&cur, MotionUp(ctx, cur, 1))
		if cur != before {
			t.Fatalf("k at row 0 moved cursor to %+v", cur)
		}
	})
}

func TestMotion_Property_RestingPositions(t *testing.T) {
	ops := []MotionFunc{
		MotionLeft, MotionRight, MotionUp, MotionDown,
		MotionWordForward, MotionWORDForward, MotionWordBack, MotionWORDBack,
		MotionWordEnd, MotionWORDEnd, MotionLineStart, MotionLineEnd,
		MotionFirstNonBlank, MotionFileStart, MotionFileEnd, MotionMatchBracket,
	}
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-c (){}.\t]{0,8}`), 1, 5).Draw(t, "lines")
		text := ""
		for i, l := range lines {
			if i > 0 {
				text += "\n"
			}
			text += l
		}
		ctx := newCtx(text)
		b := ctx.Buf
		row := rapid.IntRange(0, b.LastRow()).Draw(t, "row")
		cur := core.NewCursor(b.Clamp(core.Position{Row: row, Col: rapid.IntRange(0, 8).Draw(t, "col")}, false))

		for i := 0; i < 6; i++ {
			op := ops[rapid.IntRange(0, len(ops)-1).Draw(t, "op")]
			OpMove(&cur, op(ctx, cur, rapid.IntRange(0, 3).Draw(t, "count")))
			if b.Clamp(cur.Pos(), false) != cur.Pos() {
				t.Fatalf("cursor %+v is not a resting position", cur.Pos())
			}
		}
	})
}
