package core

import (
	"strings"
)

// Buffer is an ordered, mutable sequence of text lines
// Invariant: at least one line, no line contains a newline
// Columns are rune indices into a line
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates a buffer from normalized text
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.Reset(text)
	return b
}

// NormalizeText unifies line terminators and trims trailing blank lines
// Always returns at least one line
func NormalizeText(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	end := len(lines)
	for end > 1 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// Reset replaces the whole content with normalized text
func (b *Buffer) Reset(text string) {
	src := NormalizeText(text)
	b.lines = make([][]rune, len(src))
	for i, s := range src {
		b.lines[i] = []rune(s)
	}
}

// LineCount returns the number of lines, always >= 1
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LastRow returns the index of the last line
func (b *Buffer) LastRow() int {
	return len(b.lines) - 1
}

// Line returns the line text, or "" when row is out of range
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Runes returns the line storage for read-only scanning
// Callers must not retain or modify the slice
func (b *Buffer) Runes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the rune length of a line
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// RuneAt returns the rune at a position
func (b *Buffer) RuneAt(p Position) (rune, bool) {
	if p.Row < 0 || p.Row >= len(b.lines) || p.Col < 0 || p.Col >= len(b.lines[p.Row]) {
		return 0, false
	}
	return b.lines[p.Row][p.Col], true
}

// Lines returns a snapshot of all lines
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// String joins lines with '\n'
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// ClampRow bounds row to [0, LastRow]
func (b *Buffer) ClampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row > b.LastRow() {
		return b.LastRow()
	}
	return row
}

// ClampCol bounds col for a row. A resting column must sit on a character
// (or 0 on an empty line); pastEnd allows col == line length for insertion
func (b *Buffer) ClampCol(row, col int, pastEnd bool) int {
	limit := b.LineLen(row)
	if !pastEnd {
		limit--
	}
	if col > limit {
		col = limit
	}
	if col < 0 {
		col = 0
	}
	return col
}

// Clamp bounds a position to a valid location
func (b *Buffer) Clamp(p Position, pastEnd bool) Position {
	row := b.ClampRow(p.Row)
	return Position{Row: row, Col: b.ClampCol(row, p.Col, pastEnd)}
}

// FirstNonBlank returns the column of the first non-space, non-tab rune
// Returns the last column on an all-blank line
func (b *Buffer) FirstNonBlank(row int) int {
	line := b.Runes(row)
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return b.ClampCol(row, len(line), false)
}

// InsertRune splices r into a line at col
func (b *Buffer) InsertRune(row, col int, r rune) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	col = clampInt(col, 0, len(line))
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
}

// DeleteInLine removes the half-open column span [from, to) of a line
func (b *Buffer) DeleteInLine(row, from, to int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	from = clampInt(from, 0, len(line))
	to = clampInt(to, 0, len(line))
	if from >= to {
		return
	}
	b.lines[row] = append(line[:from], line[to:]...)
}

// SplitLine breaks a line at col; the tail becomes a new line below
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	col = clampInt(col, 0, len(line))

	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])
	b.lines[row] = line[:col:col]
	b.insertLineAt(row+1, tail)
}

// JoinLines appends line row+1 onto line row
// Returns the join column, or -1 if there is no next line
func (b *Buffer) JoinLines(row int) int {
	if row < 0 || row+1 >= len(b.lines) {
		return -1
	}
	joinCol := len(b.lines[row])
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.removeLines(row+1, row+2)
	return joinCol
}

// InsertLine inserts text as a new line at row, shifting later lines down
func (b *Buffer) InsertLine(row int, text string) {
	row = clampInt(row, 0, len(b.lines))
	b.insertLineAt(row, []rune(text))
}

// DeleteLines removes up to count lines starting at row
// Returns the number removed; the buffer keeps at least one (blank) line
func (b *Buffer) DeleteLines(row, count int) int {
	if row < 0 || row >= len(b.lines) || count <= 0 {
		return 0
	}
	end := row + count
	if end > len(b.lines) {
		end = len(b.lines)
	}
	b.removeLines(row, end)
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
	}
	return end - row
}

// DeleteSpan removes the half-open range [start, end)
// Cross-line spans merge the head of the first line with the tail of the last
func (b *Buffer) DeleteSpan(start, end Position) {
	if end.Less(start) {
		start, end = end, start
	}
	start.Row = b.ClampRow(start.Row)
	end.Row = b.ClampRow(end.Row)
	start.Col = clampInt(start.Col, 0, b.LineLen(start.Row))
	end.Col = clampInt(end.Col, 0, b.LineLen(end.Row))

	if start.Row == end.Row {
		b.DeleteInLine(start.Row, start.Col, end.Col)
		return
	}

	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)
	b.lines[start.Row] = merged
	b.removeLines(start.Row+1, end.Row+1)
}

func (b *Buffer) insertLineAt(row int, line []rune) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = line
}

func (b *Buffer) removeLines(from, to int) {
	n := copy(b.lines[from:], b.lines[to:])
	for i := from + n; i < len(b.lines); i++ {
		b.lines[i] = nil
	}
	b.lines = b.lines[:from+n]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
