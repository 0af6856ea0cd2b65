package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownAction is returned when a keymap binds a key to an unregistered action
var ErrUnknownAction = errors.New("unknown action")

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"dollar":    '$',
	"percent":   '%',
	"caret":     '^',
}

// specialKeyNames lists named keys accepted in [normal_keys], by lowercase name
var specialKeyNames = map[string]string{
	"left":       KeyArrowLeft,
	"right":      KeyArrowRight,
	"up":         KeyArrowUp,
	"down":       KeyArrowDown,
	"arrowleft":  KeyArrowLeft,
	"arrowright": KeyArrowRight,
	"arrowup":    KeyArrowUp,
	"arrowdown":  KeyArrowDown,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pagedown":   KeyPageDown,
	"pgup":       KeyPageUp,
	"pgdn":       KeyPageDown,
}

// keymapFile is the on-disk keymap layout
type keymapFile struct {
	Normal     map[string]string `toml:"normal"`
	NormalKeys map[string]string `toml:"normal_keys"`
	Operator   map[string]string `toml:"operator"`
	PrefixG    map[string]string `toml:"prefix_g"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections present in the TOML are populated
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	var err error

	if raw.Normal != nil {
		if kt.NormalRunes, err = parseRuneSection("normal", raw.Normal); err != nil {
			return nil, err
		}
	}
	if raw.Operator != nil {
		if kt.OperatorTargets, err = parseRuneSection("operator", raw.Operator); err != nil {
			return nil, err
		}
	}
	if raw.PrefixG != nil {
		if kt.PrefixG, err = parseRuneSection("prefix_g", raw.PrefixG); err != nil {
			return nil, err
		}
	}
	if raw.NormalKeys != nil {
		if kt.SpecialKeys, err = parseSpecialKeySection("normal_keys", raw.NormalKeys); err != nil {
			return nil, err
		}
	}

	return kt, nil
}

// parseRuneSection parses a section of rune key → action name bindings
func parseRuneSection(section string, data map[string]string) (map[rune]KeyEntry, error) {
	result := make(map[rune]KeyEntry, len(data))

	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[r] = entry
	}

	return result, nil
}

// parseSpecialKeySection parses a section of named key → action name bindings
func parseSpecialKeySection(section string, data map[string]string) (map[string]KeyEntry, error) {
	result := make(map[string]KeyEntry, len(data))

	for keyStr, actionName := range data {
		name, ok := specialKeyNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		result[name] = entry
	}

	return result, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.NormalRunes, override.NormalRunes)
	mergeMap(result.OperatorTargets, override.OperatorTargets)
	mergeMap(result.PrefixG, override.PrefixG)
	mergeMap(result.SpecialKeys, override.SpecialKeys)

	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	if override == nil {
		return
	}
	for k, v := range override {
		if v.Behavior == BehaviorNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
