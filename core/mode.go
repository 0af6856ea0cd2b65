package core

// Mode is the active editing mode; exactly one is active at a time
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual  // character-wise selection
	ModeLine    // line-wise selection
	ModeCommand // ':' command line
	ModeBlock   // reserved, never entered
	ModeCount
)

var modeNames = [ModeCount]string{
	ModeNormal:  "normal",
	ModeInsert:  "insert",
	ModeVisual:  "visual",
	ModeLine:    "line",
	ModeCommand: "command",
	ModeBlock:   "block",
}

func (m Mode) String() string {
	if m >= ModeCount {
		return "unknown"
	}
	return modeNames[m]
}

// IsSelecting reports whether the mode holds a visual selection
func (m Mode) IsSelecting() bool {
	return m == ModeVisual || m == ModeLine
}
