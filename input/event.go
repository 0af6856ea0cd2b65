package input

import "unicode/utf8"

// Key names for non-printable keys, matching host key identifiers
const (
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyTab        = "Tab"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
)

// Modifier names accepted by KeyEvent.ModifierState
const (
	ModControl  = "Control"
	ModAlt      = "Alt"
	ModMeta     = "Meta"
	ModShift    = "Shift"
	ModAltGraph = "AltGraph"
)

// modifierKeys are key names reported for a bare modifier press
var modifierKeys = map[string]bool{
	ModShift:     true,
	ModControl:   true,
	ModAlt:       true,
	ModMeta:      true,
	ModAltGraph:  true,
	"CapsLock":   true,
	"NumLock":    true,
	"ScrollLock": true,
	"OS":         true,
	"Dead":       true,
	"Compose":    true,
}

// KeyEvent is a raw key-down event from the host
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Meta  bool
	Shift bool

	// Extra modifier states keyed by name (e.g. AltGraph, CapsLock)
	Modifiers map[string]bool

	defaultPrevented bool
}

// ModifierState reports whether the named modifier is active
func (e *KeyEvent) ModifierState(name string) bool {
	switch name {
	case ModControl:
		return e.Ctrl
	case ModAlt:
		return e.Alt
	case ModMeta:
		return e.Meta
	case ModShift:
		return e.Shift
	}
	return e.Modifiers[name]
}

// PreventDefault marks the event as consumed so the host skips its default action
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Rune builds a plain printable key event
func Rune(r rune) *KeyEvent {
	return &KeyEvent{Key: string(r)}
}

// Named builds a plain named key event
func Named(name string) *KeyEvent {
	return &KeyEvent{Key: name}
}

// Key is a normalized key: either a printable rune or a named key
type Key struct {
	Name      string
	Rune      rune
	Printable bool
}

// Normalize classifies an event. A single-rune key is printable unless a
// Ctrl/Alt/Meta chord is held; AltGraph without Ctrl or Meta still counts
// as printable
func Normalize(e *KeyEvent) Key {
	k := Key{Name: e.Key}
	if utf8.RuneCountInString(e.Key) != 1 {
		return k
	}
	r, _ := utf8.DecodeRuneInString(e.Key)
	k.Rune = r

	if e.Ctrl || e.Meta {
		return k
	}
	if e.Alt && !e.ModifierState(ModAltGraph) {
		return k
	}
	k.Printable = true
	return k
}

// IsModifier reports whether k is a bare modifier press, which never
// affects engine state
func (k Key) IsModifier() bool {
	return modifierKeys[k.Name]
}

// Is reports whether k is the printable rune r
func (k Key) Is(r rune) bool {
	return k.Printable && k.Rune == r
}

// Digit returns the value of a printable decimal digit
func (k Key) Digit() (int, bool) {
	if !k.Printable || k.Rune < '0' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}
