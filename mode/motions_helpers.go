package mode

import (
	"github.com/21andrewchang/vimgod/core"
)

// Word scans walk "cells": every column of a line plus one virtual
// end-of-line cell at col == len, which classifies as space. Empty lines
// consist of that single cell and act as word stops

func nextCell(b *core.Buffer, p core.Position) (core.Position, bool) {
	if p.Col < b.LineLen(p.Row) {
		return core.Position{Row: p.Row, Col: p.Col + 1}, true
	}
	if p.Row < b.LastRow() {
		return core.Position{Row: p.Row + 1, Col: 0}, true
	}
	return p, false
}

func prevCell(b *core.Buffer, p core.Position) (core.Position, bool) {
	if p.Col > 0 {
		return core.Position{Row: p.Row, Col: p.Col - 1}, true
	}
	if p.Row > 0 {
		return core.Position{Row: p.Row - 1, Col: b.LineLen(p.Row - 1)}, true
	}
	return p, false
}

func cellClass(b *core.Buffer, p core.Position, big bool) core.CharClass {
	r, ok := b.RuneAt(p)
	if !ok {
		return core.ClassSpace
	}
	return core.Classify(r, big)
}

func isEmptyLine(b *core.Buffer, row int) bool {
	return b.LineLen(row) == 0
}

// lastRest returns the last resting position in the buffer
func lastRest(b *core.Buffer) core.Position {
	row := b.LastRow()
	return core.Position{Row: row, Col: b.ClampCol(row, b.LineLen(row), false)}
}

// --- Word Motion Helpers ---

// findNextWordStart returns the start of the next word. The bool is set
// when the scan ran off the end of the buffer, in which case the last
// character of the buffer is returned
func findNextWordStart(b *core.Buffer, p core.Position, big bool) (core.Position, bool) {
	start := p
	cls := cellClass(b, p, big)

	if cls != core.ClassSpace {
		for cellClass(b, p, big) == cls {
			next, ok := nextCell(b, p)
			if !ok {
				return lastRest(b), true
			}
			p = next
		}
	}

	for cellClass(b, p, big) == core.ClassSpace {
		if p != start && isEmptyLine(b, p.Row) {
			return p, false
		}
		next, ok := nextCell(b, p)
		if !ok {
			return lastRest(b), true
		}
		p = next
	}
	return p, false
}

// findWordEnd returns the end of the current or next word
// Returns p unchanged when only whitespace follows
func findWordEnd(b *core.Buffer, p core.Position, big bool) core.Position {
	orig := p
	next, ok := nextCell(b, p)
	if !ok {
		return orig
	}
	p = next

	for cellClass(b, p, big) == core.ClassSpace {
		next, ok = nextCell(b, p)
		if !ok {
			return orig
		}
		p = next
	}

	cls := cellClass(b, p, big)
	for {
		next, ok = nextCell(b, p)
		if !ok || cellClass(b, next, big) != cls {
			return p
		}
		p = next
	}
}

// findPrevWordStart returns the start of the current or previous word
func findPrevWordStart(b *core.Buffer, p core.Position, big bool) core.Position {
	prev, ok := prevCell(b, p)
	if !ok {
		return p
	}
	p = prev

	for cellClass(b, p, big) == core.ClassSpace {
		if isEmptyLine(b, p.Row) {
			return p
		}
		prev, ok = prevCell(b, p)
		if !ok {
			return p
		}
		p = prev
	}

	cls := cellClass(b, p, big)
	for {
		prev, ok = prevCell(b, p)
		if !ok || cellClass(b, prev, big) != cls {
			return p
		}
		p = prev
	}
}

// --- Character Search Helpers ---

// findCharOnLine finds the count-th occurrence of target strictly after
// (forward) or before col, starting skip columns away. Returns false when
// there are fewer than count matches
func findCharOnLine(line []rune, col int, target rune, count int, forward bool, skip int) (int, bool) {
	step := -1
	if forward {
		step = 1
	}
	found := 0
	for x := col + step*skip; x >= 0 && x < len(line); x += step {
		if line[x] == target {
			found++
			if found == count {
				return x, true
			}
		}
	}
	return col, false
}

// --- Bracket Helpers ---

func isBracket(r rune) bool {
	return r == '(' || r == ')' || r == '{' || r == '}' || r == '[' || r == ']' || r == '<' || r == '>'
}

func isOpeningBracket(r rune) bool {
	return r == '(' || r == '{' || r == '[' || r == '<'
}

func getMatchingBracket(r rune) rune {
	switch r {
	case '(':
		return ')'
	case ')':
		return '('
	case '{':
		return '}'
	case '}':
		return '{'
	case '[':
		return ']'
	case ']':
		return '['
	case '<':
		return '>'
	case '>':
		return '<'
	}
	return 0
}

// findMatchingBracket returns the partner of the bracket at p
func findMatchingBracket(b *core.Buffer, p core.Position) (core.Position, bool) {
	r, ok := b.RuneAt(p)
	if !ok || !isBracket(r) {
		return p, false
	}
	match := getMatchingBracket(r)
	if isOpeningBracket(r) {
		return findMatchingBracketForward(b, p, r, match)
	}
	return findMatchingBracketBackward(b, p, r, match)
}

// findMatchingBracketForward scans after start for the closeChar that
// balances an already-open openChar
func findMatchingBracketForward(b *core.Buffer, start core.Position, openChar, closeChar rune) (core.Position, bool) {
	depth := 0
	for y := start.Row; y < b.LineCount(); y++ {
		line := b.Runes(y)
		x := 0
		if y == start.Row {
			x = start.Col + 1
		}
		for ; x < len(line); x++ {
			switch line[x] {
			case openChar:
				depth++
			case closeChar:
				if depth == 0 {
					return core.Position{Row: y, Col: x}, true
				}
				depth--
			}
		}
	}
	return start, false
}

// findMatchingBracketBackward scans before start for the openChar that
// balances an already-seen closeChar
func findMatchingBracketBackward(b *core.Buffer, start core.Position, closeChar, openChar rune) (core.Position, bool) {
	depth := 0
	for y := start.Row; y >= 0; y-- {
		line := b.Runes(y)
		x := len(line) - 1
		if y == start.Row {
			x = min(start.Col-1, len(line)-1)
		}
		for ; x >= 0; x-- {
			switch line[x] {
			case closeChar:
				depth++
			case openChar:
				if depth == 0 {
					return core.Position{Row: y, Col: x}, true
				}
				depth--
			}
		}
	}
	return start, false
}
