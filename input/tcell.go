package input

import (
	"github.com/gdamore/tcell/v2"
)

var tcellNames = map[tcell.Key]string{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyTab,
	tcell.KeyUp:         KeyArrowUp,
	tcell.KeyDown:       KeyArrowDown,
	tcell.KeyLeft:       KeyArrowLeft,
	tcell.KeyRight:      KeyArrowRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
}

// FromTcell converts a terminal key event into a host-neutral KeyEvent
func FromTcell(ev *tcell.EventKey) *KeyEvent {
	mods := ev.Modifiers()
	out := &KeyEvent{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Alt:   mods&tcell.ModAlt != 0,
		Meta:  mods&tcell.ModMeta != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		out.Key = string(ev.Rune())
	case tcellNames[k] != "":
		out.Key = tcellNames[k]
		if k == tcell.KeyBacktab {
			out.Shift = true
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Control letters arrive as their own key codes
		out.Key = string(rune('a' + (k - tcell.KeyCtrlA)))
		out.Ctrl = true
	default:
		out.Key = ev.Name()
	}
	return out
}
