package config

import (
	"fmt"
	"os"
	"time"

	"github.com/21andrewchang/vimgod/asset"
	"github.com/21andrewchang/vimgod/core"
	"github.com/21andrewchang/vimgod/drill"
	"github.com/BurntSushi/toml"
)

// drillFile is the on-disk drill pack layout
type drillFile struct {
	Rounds []roundSpec `toml:"round"`
}

type roundSpec struct {
	Name       string `toml:"name"`
	Text       string `toml:"text"`
	StartRow   int    `toml:"start_row"`
	StartCol   int    `toml:"start_col"`
	BudgetMs   int64  `toml:"budget_ms"`
	InsertMode bool   `toml:"insert_mode"`
	Par        int    `toml:"par"`

	TargetRow       *int           `toml:"target_row"`
	TargetCol       *int           `toml:"target_col"`
	TargetSelection *selectionSpec `toml:"target_selection"`
	TargetText      *string        `toml:"target_text"`
}

// selectionSpec describes a selection target
// For kind "char" the end position is the last selected character
type selectionSpec struct {
	Kind     string `toml:"kind"`
	StartRow int    `toml:"start_row"`
	StartCol int    `toml:"start_col"`
	EndRow   int    `toml:"end_row"`
	EndCol   int    `toml:"end_col"`
}

// ParseDrills decodes and validates a TOML drill pack
func ParseDrills(data []byte) ([]drill.Round, error) {
	var raw drillFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("drill pack parse: %w", err)
	}
	if len(raw.Rounds) == 0 {
		return nil, fmt.Errorf("drill pack: %w", drill.ErrNoRounds)
	}

	rounds := make([]drill.Round, 0, len(raw.Rounds))
	for i, spec := range raw.Rounds {
		r, err := spec.round()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// LoadDrills reads a drill pack file
func LoadDrills(drillPath string) ([]drill.Round, error) {
	data, err := os.ReadFile(drillPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", drillPath, err)
	}
	rounds, err := ParseDrills(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", drillPath, err)
	}
	return rounds, nil
}

// LoadDrillsAuto loads drills with priority: customPath > embedded pack
func LoadDrillsAuto(customPath string) ([]drill.Round, error) {
	if customPath != "" {
		return LoadDrills(customPath)
	}
	return ParseDrills([]byte(asset.DefaultDrills))
}

func (s roundSpec) round() (drill.Round, error) {
	r := drill.Round{
		Name:       s.Name,
		Text:       s.Text,
		Start:      core.Position{Row: s.StartRow, Col: s.StartCol},
		Budget:     time.Duration(s.BudgetMs) * time.Millisecond,
		InsertMode: s.InsertMode,
		Par:        s.Par,
	}

	kinds := 0
	if s.TargetRow != nil || s.TargetCol != nil {
		kinds++
		var p core.Position
		if s.TargetRow != nil {
			p.Row = *s.TargetRow
		}
		if s.TargetCol != nil {
			p.Col = *s.TargetCol
		}
		r.Target = drill.CursorTarget(p)
	}
	if s.TargetSelection != nil {
		kinds++
		sel, err := s.TargetSelection.selection()
		if err != nil {
			return r, err
		}
		r.Target = drill.SelectionTarget(sel)
	}
	if s.TargetText != nil {
		kinds++
		r.Target = drill.TextTarget(*s.TargetText)
	}
	if kinds != 1 {
		return r, fmt.Errorf("%q: want exactly one target, got %d", s.Name, kinds)
	}
	return r, nil
}

func (s selectionSpec) selection() (core.Selection, error) {
	switch s.Kind {
	case "line":
		return core.LineSelection(s.StartRow, s.EndRow), nil
	case "char":
		return core.CharSelection(
			core.Position{Row: s.StartRow, Col: s.StartCol},
			core.Position{Row: s.EndRow, Col: s.EndCol},
		), nil
	}
	return core.Selection{}, fmt.Errorf("unknown selection kind %q", s.Kind)
}
