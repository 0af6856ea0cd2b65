package core

// SelectionKind discriminates the Selection union
type SelectionKind uint8

const (
	SelectionLine SelectionKind = iota + 1
	SelectionChar
)

// Selection is either a line range (inclusive rows) or a character range
// For SelectionChar, End is one column past the last included character
type Selection struct {
	Kind SelectionKind

	// SelectionLine, StartRow <= EndRow
	StartRow, EndRow int

	// SelectionChar, Start <= End
	Start, End Position
}

// LineSelection builds a normalized line selection between two rows
func LineSelection(a, b int) Selection {
	if a > b {
		a, b = b, a
	}
	return Selection{Kind: SelectionLine, StartRow: a, EndRow: b}
}

// CharSelection builds a half-open selection covering both positions
func CharSelection(anchor, head Position) Selection {
	start := MinPos(anchor, head)
	last := MaxPos(anchor, head)
	return Selection{
		Kind:  SelectionChar,
		Start: start,
		End:   Position{Row: last.Row, Col: last.Col + 1},
	}
}

// ContainsRow reports whether any part of row is selected
func (s Selection) ContainsRow(row int) bool {
	switch s.Kind {
	case SelectionLine:
		return row >= s.StartRow && row <= s.EndRow
	case SelectionChar:
		return row >= s.Start.Row && row <= s.End.Row
	}
	return false
}

// Contains reports whether the character at p is selected
func (s Selection) Contains(p Position) bool {
	switch s.Kind {
	case SelectionLine:
		return s.ContainsRow(p.Row)
	case SelectionChar:
		return !p.Less(s.Start) && p.Less(s.End)
	}
	return false
}
