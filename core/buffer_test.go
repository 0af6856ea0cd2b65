package core

import (
	"testing"

	"pgregory.net/rapid"
)

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines %q, got %d lines %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNewBuffer_NormalizesText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"trailing blanks", "a\nb\n\n  \n\t\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb", []string{"a", "", "b"}},
		{"only blanks", "\n\n\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, NewBuffer(tt.text), tt.want...)
		})
	}
}

func TestBuffer_UnicodeColumns(t *testing.T) {
	b := NewBuffer("héllo wörld")
	if b.LineLen(0) != 11 {
		t.Errorf("Expected rune length 11, got %d", b.LineLen(0))
	}
	r, ok := b.RuneAt(Position{Row: 0, Col: 7})
	if !ok || r != 'ö' {
		t.Errorf("Expected 'ö' at col 7, got %q (ok=%v)", r, ok)
	}
	if _, ok := b.RuneAt(Position{Row: 0, Col: 11}); ok {
		t.Error("Expected RuneAt past end to fail")
	}
}

func TestBuffer_ClampCol(t *testing.T) {
	b := NewBuffer("abc\n")
	b.InsertLine(1, "")

	if got := b.ClampCol(0, 10, false); got != 2 {
		t.Errorf("Expected resting clamp 2, got %d", got)
	}
	if got := b.ClampCol(0, 10, true); got != 3 {
		t.Errorf("Expected insert clamp 3, got %d", got)
	}
	if got := b.ClampCol(1, 5, false); got != 0 {
		t.Errorf("Expected empty line clamp 0, got %d", got)
	}
	if got := b.ClampCol(0, -4, false); got != 0 {
		t.Errorf("Expected negative clamp 0, got %d", got)
	}
}

func TestBuffer_InsertAndDeleteInLine(t *testing.T) {
	b := NewBuffer("held")
	b.InsertRune(0, 3, 'l')
	b.InsertRune(0, 5, 'o')
	assertLines(t, b, "hello")

	b.DeleteInLine(0, 1, 3)
	assertLines(t, b, "hlo")

	// Inverted span is a no-op
	b.DeleteInLine(0, 2, 1)
	assertLines(t, b, "hlo")
}

func TestBuffer_SplitAndJoin(t *testing.T) {
	b := NewBuffer("hello world")
	b.SplitLine(0, 5)
	assertLines(t, b, "hello", " world")

	col := b.JoinLines(0)
	if col != 5 {
		t.Errorf("Expected join column 5, got %d", col)
	}
	assertLines(t, b, "hello world")

	if b.JoinLines(0) != -1 {
		t.Error("Expected join on last line to report -1")
	}
}

func TestBuffer_SplitDoesNotAlias(t *testing.T) {
	b := NewBuffer("abcdef")
	b.SplitLine(0, 3)
	b.InsertRune(0, 3, 'X')
	assertLines(t, b, "abcX", "def")
}

func TestBuffer_DeleteSpan(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end Position
		want       []string
	}{
		{"same line", "abcdef", Position{0, 1}, Position{0, 4}, []string{"aef"}},
		{"reversed", "abcdef", Position{0, 4}, Position{0, 1}, []string{"aef"}},
		{"cross line", "abc\ndef\nghi", Position{0, 1}, Position{2, 2}, []string{"ai"}},
		{"newline only", "abc\ndef", Position{0, 3}, Position{1, 0}, []string{"abcdef"}},
		{"clamped end", "abc", Position{0, 1}, Position{0, 99}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			b.DeleteSpan(tt.start, tt.end)
			assertLines(t, b, tt.want...)
		})
	}
}

func TestBuffer_DeleteLinesKeepsOneLine(t *testing.T) {
	b := NewBuffer("a\nb\nc")
	if n := b.DeleteLines(1, 5); n != 2 {
		t.Errorf("Expected 2 lines removed, got %d", n)
	}
	assertLines(t, b, "a")

	if n := b.DeleteLines(0, 3); n != 1 {
		t.Errorf("Expected 1 line removed, got %d", n)
	}
	assertLines(t, b, "")
}

func TestBuffer_FirstNonBlank(t *testing.T) {
	b := NewBuffer("  \tfoo\n   \nbar")
	if got := b.FirstNonBlank(0); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
	if got := b.FirstNonBlank(1); got != 2 {
		t.Errorf("Expected last column 2 on blank line, got %d", got)
	}
	if got := b.FirstNonBlank(2); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestBuffer_Property_NeverEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-c ]{0,6}`), 1, 8).Draw(t, "lines")
		text := ""
		for i, l := range lines {
			if i > 0 {
				text += "\n"
			}
			text += l
		}
		b := NewBuffer(text)

		row := rapid.IntRange(0, b.LastRow()).Draw(t, "row")
		count := rapid.IntRange(0, 12).Draw(t, "count")
		b.DeleteLines(row, count)

		if b.LineCount() < 1 {
			t.Fatalf("buffer became empty")
		}
		for i := 0; i < b.LineCount(); i++ {
			for _, r := range b.Runes(i) {
				if r == '\n' {
					t.Fatalf("line %d contains newline", i)
				}
			}
		}
	})
}
