package mode

import (
	"github.com/21andrewchang/vimgod/core"
)

// InnerWord resolves 'iw'/'iW': the maximal run of the cursor's class, or
// the single blank under the cursor
func InnerWord(b *core.Buffer, p core.Position, big bool) (from, to core.Position, ok bool) {
	line := b.Runes(p.Row)
	if p.Col < 0 || p.Col >= len(line) {
		return p, p, false
	}
	if core.IsBlank(line[p.Col]) {
		return p, core.Position{Row: p.Row, Col: p.Col + 1}, true
	}

	cls := core.Classify(line[p.Col], big)
	start, end := p.Col, p.Col+1
	for start > 0 && core.Classify(line[start-1], big) == cls {
		start--
	}
	for end < len(line) && core.Classify(line[end], big) == cls {
		end++
	}
	return core.Position{Row: p.Row, Col: start}, core.Position{Row: p.Row, Col: end}, true
}

// InnerQuote resolves 'i"' and friends. The enclosing pair on the cursor's
// line wins unless it is missing or empty; then the next non-empty pair
// after the cursor is used, searching later lines if necessary
func InnerQuote(b *core.Buffer, p core.Position, q rune) (from, to core.Position, ok bool) {
	line := b.Runes(p.Row)
	col := min(p.Col, len(line))

	before := 0
	last := -1
	for x := 0; x < col; x++ {
		if line[x] == q {
			before++
			last = x
		}
	}

	open, close := -1, -1
	switch {
	case col < len(line) && line[col] == q && before%2 == 1:
		open, close = last, col
	case col < len(line) && line[col] == q:
		open = col
		close = indexRune(line, q, col+1)
	case before%2 == 1:
		open = last
		close = indexRune(line, q, col)
	}

	if open >= 0 && close > open+1 {
		return core.Position{Row: p.Row, Col: open + 1}, core.Position{Row: p.Row, Col: close}, true
	}

	searchFrom := core.Position{Row: p.Row, Col: col + 1}
	if close >= 0 {
		searchFrom.Col = close + 1
	}
	return nextQuotePair(b, searchFrom, q)
}

// nextQuotePair finds the first non-empty same-line pair at or after from
func nextQuotePair(b *core.Buffer, from core.Position, q rune) (core.Position, core.Position, bool) {
	for y := from.Row; y < b.LineCount(); y++ {
		line := b.Runes(y)
		x := 0
		if y == from.Row {
			x = from.Col
		}
		for {
			open := indexRune(line, q, x)
			if open < 0 {
				break
			}
			close := indexRune(line, q, open+1)
			if close < 0 {
				break
			}
			if close > open+1 {
				return core.Position{Row: y, Col: open + 1}, core.Position{Row: y, Col: close}, true
			}
			x = close + 1
		}
	}
	return from, from, false
}

// InnerBracket resolves 'i(' and friends: the innermost pair enclosing the
// cursor by depth tracking, or the next non-empty pair after it
func InnerBracket(b *core.Buffer, p core.Position, openChar, closeChar rune) (from, to core.Position, ok bool) {
	var open core.Position
	found := false

	r, _ := b.RuneAt(p)
	switch r {
	case openChar:
		open, found = p, true
	default:
		// On a close bracket the scan starts left of it, which already skips it
		open, found = findMatchingBracketBackward(b, p, closeChar, openChar)
	}

	searchFrom := p
	if found {
		if close, ok := findMatchingBracketForward(b, open, openChar, closeChar); ok {
			inner := core.Position{Row: open.Row, Col: open.Col + 1}
			if inner != close {
				return inner, close, true
			}
			searchFrom = core.Position{Row: close.Row, Col: close.Col + 1}
		}
	}
	return nextBracketPair(b, searchFrom, openChar, closeChar)
}

// nextBracketPair finds the first complete non-empty pair opening at or after from
func nextBracketPair(b *core.Buffer, from core.Position, openChar, closeChar rune) (core.Position, core.Position, bool) {
	for y := from.Row; y < b.LineCount(); y++ {
		line := b.Runes(y)
		x := 0
		if y == from.Row {
			x = from.Col
		}
		for ; x < len(line); x++ {
			if line[x] != openChar {
				continue
			}
			open := core.Position{Row: y, Col: x}
			close, ok := findMatchingBracketForward(b, open, openChar, closeChar)
			if !ok {
				return from, from, false
			}
			inner := core.Position{Row: y, Col: x + 1}
			if inner != close {
				return inner, close, true
			}
		}
	}
	return from, from, false
}

// ResolveInner dispatches an 'i' object key to its resolver
// Returns false for unknown object keys or objects that cannot be located
func ResolveInner(b *core.Buffer, p core.Position, obj rune) (from, to core.Position, ok bool) {
	switch obj {
	case 'w':
		return InnerWord(b, p, false)
	case 'W':
		return InnerWord(b, p, true)
	case '"', '\'', '`':
		return InnerQuote(b, p, obj)
	case 'b':
		obj = '('
	case 'B':
		obj = '{'
	}
	if !isBracket(obj) {
		return p, p, false
	}
	if !isOpeningBracket(obj) {
		obj = getMatchingBracket(obj)
	}
	return InnerBracket(b, p, obj, getMatchingBracket(obj))
}

func indexRune(line []rune, r rune, from int) int {
	for x := max(from, 0); x < len(line); x++ {
		if line[x] == r {
			return x
		}
	}
	return -1
}

// IsObjectKey reports whether r names an inner text object
func IsObjectKey(r rune) bool {
	switch r {
	case 'w', 'W', '"', '\'', '`', 'b', 'B':
		return true
	}
	return isBracket(r)
}
