package drill

import (
	"errors"
	"fmt"
	"slices"

	"github.com/21andrewchang/vimgod/core"
)

// TargetKind selects what a round asks the player to reach
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetCursor
	TargetSelection
	TargetText
)

func (k TargetKind) String() string {
	switch k {
	case TargetCursor:
		return "cursor"
	case TargetSelection:
		return "selection"
	case TargetText:
		return "text"
	}
	return "none"
}

// View is the engine state a target is checked against
type View interface {
	Lines() []string
	Cursor() core.Cursor
	Selection() (core.Selection, bool)
}

// Target is the goal state of a round; only the field matching Kind is used
type Target struct {
	Kind      TargetKind
	Cursor    core.Position
	Selection core.Selection
	Text      []string
}

// CursorTarget asks for the cursor to rest at p
func CursorTarget(p core.Position) Target {
	return Target{Kind: TargetCursor, Cursor: p}
}

// SelectionTarget asks for exactly sel to be selected
func SelectionTarget(sel core.Selection) Target {
	return Target{Kind: TargetSelection, Selection: sel}
}

// TextTarget asks for the buffer to equal text after normalization
func TextTarget(text string) Target {
	return Target{Kind: TargetText, Text: core.NormalizeText(text)}
}

// Reached reports whether v satisfies the target
func (t Target) Reached(v View) bool {
	switch t.Kind {
	case TargetCursor:
		return v.Cursor().Pos() == t.Cursor
	case TargetSelection:
		sel, ok := v.Selection()
		return ok && sel == t.Selection
	case TargetText:
		return slices.Equal(v.Lines(), t.Text)
	}
	return false
}

// Validate checks the target against the round's starting buffer
func (t Target) Validate(b *core.Buffer) error {
	switch t.Kind {
	case TargetCursor:
		if b.Clamp(t.Cursor, false) != t.Cursor {
			return fmt.Errorf("cursor target %d:%d is not a resting position", t.Cursor.Row, t.Cursor.Col)
		}
	case TargetSelection:
		s := t.Selection
		switch s.Kind {
		case core.SelectionLine:
			if s.StartRow < 0 || s.StartRow > s.EndRow || s.EndRow > b.LastRow() {
				return fmt.Errorf("line selection %d-%d out of range", s.StartRow, s.EndRow)
			}
		case core.SelectionChar:
			if !s.Start.Less(s.End) {
				return errors.New("empty char selection")
			}
		default:
			return errors.New("selection target without kind")
		}
	case TargetText:
		if len(t.Text) == 0 {
			return errors.New("text target is empty")
		}
	default:
		return errors.New("round has no target")
	}
	return nil
}
