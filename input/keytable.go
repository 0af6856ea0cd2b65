package input

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMotion
	BehaviorCharWait   // f/F/t/T await a target character
	BehaviorOperator   // d awaits a target
	BehaviorPrefix     // g awaits a second key
	BehaviorModeSwitch // v, V, :
	BehaviorInsert     // insert family, gated by config
	BehaviorSpecial    // x, D, ;, ,
	BehaviorObject     // i inside an operator or visual selection
)

// MotionOp identifies a motion algorithm
type MotionOp uint8

const (
	MotionNone          MotionOp = iota
	MotionLeft                   // h
	MotionRight                  // l
	MotionUp                     // k
	MotionDown                   // j
	MotionWordForward            // w
	MotionWORDForward            // W
	MotionWordBack               // b
	MotionWORDBack               // B
	MotionWordEnd                // e
	MotionWORDEnd                // E
	MotionLineStart              // 0
	MotionLineEnd                // $
	MotionFirstNonBlank          // ^
	MotionFileStart              // gg
	MotionFileEnd                // G
	MotionMatchBracket           // %
	MotionHalfPageUp             // PageUp
	MotionHalfPageDown           // PageDown
	MotionFindForward            // f + char
	MotionFindBack               // F + char
	MotionTillForward            // t + char
	MotionTillBack               // T + char
)

// SpecialOp identifies one-key commands
type SpecialOp uint8

const (
	SpecialNone          SpecialOp = iota
	SpecialDeleteChar              // x
	SpecialDeleteToEnd             // D
	SpecialRepeatFind              // ;
	SpecialRepeatFindRev           // ,
)

// ModeTarget identifies a mode switch destination
type ModeTarget uint8

const (
	ModeTargetNone ModeTarget = iota
	ModeTargetVisual
	ModeTargetLine
	ModeTargetCommand
)

// InsertOp identifies an insert-family entry point
type InsertOp uint8

const (
	InsertNone        InsertOp = iota
	InsertBefore               // i
	InsertAfter                // a
	InsertLineStart            // I
	InsertLineEnd              // A
	InsertOpenBelow            // o
	InsertOpenAbove            // O
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Motion     MotionOp
	Special    SpecialOp
	ModeTarget ModeTarget
	Insert     InsertOp
}

func motion(op MotionOp) KeyEntry { return KeyEntry{Behavior: BehaviorMotion, Motion: op} }
func charWait(op MotionOp) KeyEntry { return KeyEntry{Behavior: BehaviorCharWait, Motion: op} }
func special(op SpecialOp) KeyEntry { return KeyEntry{Behavior: BehaviorSpecial, Special: op} }
func modeTo(t ModeTarget) KeyEntry { return KeyEntry{Behavior: BehaviorModeSwitch, ModeTarget: t} }
func insertAt(op InsertOp) KeyEntry { return KeyEntry{Behavior: BehaviorInsert, Insert: op} }

// KeyTable maps keys to behaviors for the navigation modes
type KeyTable struct {
	// Named keys (arrows, Home/End, paging)
	SpecialKeys map[string]KeyEntry

	// Normal/visual/line mode rune bindings
	NormalRunes map[rune]KeyEntry

	// Targets valid after the delete operator
	OperatorTargets map[rune]KeyEntry

	// Keys after the g prefix
	PrefixG map[rune]KeyEntry

	// Keys the host should not scroll on
	Consumed map[string]bool
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[string]KeyEntry{
			KeyArrowLeft:  motion(MotionLeft),
			KeyArrowRight: motion(MotionRight),
			KeyArrowUp:    motion(MotionUp),
			KeyArrowDown:  motion(MotionDown),
			KeyHome:       motion(MotionLineStart),
			KeyEnd:        motion(MotionLineEnd),
			KeyPageUp:     motion(MotionHalfPageUp),
			KeyPageDown:   motion(MotionHalfPageDown),
		},

		NormalRunes: map[rune]KeyEntry{
			// Basic motions
			'h': motion(MotionLeft),
			'j': motion(MotionDown),
			'k': motion(MotionUp),
			'l': motion(MotionRight),

			// Word motions
			'w': motion(MotionWordForward),
			'W': motion(MotionWORDForward),
			'b': motion(MotionWordBack),
			'B': motion(MotionWORDBack),
			'e': motion(MotionWordEnd),
			'E': motion(MotionWORDEnd),

			// Line motions
			'0': motion(MotionLineStart),
			'^': motion(MotionFirstNonBlank),
			'$': motion(MotionLineEnd),
			'G': motion(MotionFileEnd),
			'%': motion(MotionMatchBracket),

			// Char-wait commands
			'f': charWait(MotionFindForward),
			'F': charWait(MotionFindBack),
			't': charWait(MotionTillForward),
			'T': charWait(MotionTillBack),

			// Operator and prefix
			'd': {Behavior: BehaviorOperator},
			'g': {Behavior: BehaviorPrefix},

			// Mode switches
			'v': modeTo(ModeTargetVisual),
			'V': modeTo(ModeTargetLine),
			':': modeTo(ModeTargetCommand),

			// Insert family
			'i': insertAt(InsertBefore),
			'a': insertAt(InsertAfter),
			'I': insertAt(InsertLineStart),
			'A': insertAt(InsertLineEnd),
			'o': insertAt(InsertOpenBelow),
			'O': insertAt(InsertOpenAbove),

			// Special commands
			'x': special(SpecialDeleteChar),
			'D': special(SpecialDeleteToEnd),
			';': special(SpecialRepeatFind),
			',': special(SpecialRepeatFindRev),
		},

		OperatorTargets: map[rune]KeyEntry{
			'0': motion(MotionLineStart),
			'$': motion(MotionLineEnd),
			'w': motion(MotionWordForward),
			'W': motion(MotionWORDForward),
			'b': motion(MotionWordBack),
			'B': motion(MotionWORDBack),
			'e': motion(MotionWordEnd),
			'E': motion(MotionWORDEnd),
			'f': charWait(MotionFindForward),
			'F': charWait(MotionFindBack),
			't': charWait(MotionTillForward),
			'T': charWait(MotionTillBack),
			'i': {Behavior: BehaviorObject},
		},

		PrefixG: map[rune]KeyEntry{
			'g': motion(MotionFileStart),
		},

		Consumed: map[string]bool{
			" ":           true,
			KeyArrowUp:    true,
			KeyArrowDown:  true,
			KeyArrowLeft:  true,
			KeyArrowRight: true,
			KeyPageUp:     true,
			KeyPageDown:   true,
			KeyHome:       true,
			KeyEnd:        true,
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	consumed := make(map[string]bool, len(kt.Consumed))
	for k, v := range kt.Consumed {
		consumed[k] = v
	}
	return &KeyTable{
		SpecialKeys:     cloneKeyMap(kt.SpecialKeys),
		NormalRunes:     cloneRuneMap(kt.NormalRunes),
		OperatorTargets: cloneRuneMap(kt.OperatorTargets),
		PrefixG:         cloneRuneMap(kt.PrefixG),
		Consumed:        consumed,
	}
}

// Consumes reports whether the host's default action for a key is blocked
func (kt *KeyTable) Consumes(name string) bool {
	return kt.Consumed[name]
}

func cloneRuneMap(m map[rune]KeyEntry) map[rune]KeyEntry {
	c := make(map[rune]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func cloneKeyMap(m map[string]KeyEntry) map[string]KeyEntry {
	c := make(map[string]KeyEntry, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
