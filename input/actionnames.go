package input

import "sort"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	return map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// Basic motions
		"motion_left":             motion(MotionLeft),
		"motion_right":            motion(MotionRight),
		"motion_up":               motion(MotionUp),
		"motion_down":             motion(MotionDown),
		"motion_word_forward":     motion(MotionWordForward),
		"motion_word_forward_big": motion(MotionWORDForward),
		"motion_word_back":        motion(MotionWordBack),
		"motion_word_back_big":    motion(MotionWORDBack),
		"motion_word_end":         motion(MotionWordEnd),
		"motion_word_end_big":     motion(MotionWORDEnd),
		"motion_line_start":       motion(MotionLineStart),
		"motion_line_end":         motion(MotionLineEnd),
		"motion_first_non_blank":  motion(MotionFirstNonBlank),
		"motion_file_start":       motion(MotionFileStart),
		"motion_file_end":         motion(MotionFileEnd),
		"motion_match_bracket":    motion(MotionMatchBracket),
		"motion_half_page_up":     motion(MotionHalfPageUp),
		"motion_half_page_down":   motion(MotionHalfPageDown),

		// Char-wait (f/F/t/T)
		"char_find_forward": charWait(MotionFindForward),
		"char_find_back":    charWait(MotionFindBack),
		"char_till_forward": charWait(MotionTillForward),
		"char_till_back":    charWait(MotionTillBack),

		// Operator, prefix and text objects
		"operator_delete": {Behavior: BehaviorOperator},
		"prefix_g":        {Behavior: BehaviorPrefix},
		"object_inner":    {Behavior: BehaviorObject},

		// Mode switches
		"mode_visual":  modeTo(ModeTargetVisual),
		"mode_line":    modeTo(ModeTargetLine),
		"mode_command": modeTo(ModeTargetCommand),

		// Insert family
		"insert_before":     insertAt(InsertBefore),
		"insert_after":      insertAt(InsertAfter),
		"insert_line_start": insertAt(InsertLineStart),
		"insert_line_end":   insertAt(InsertLineEnd),
		"insert_open_below": insertAt(InsertOpenBelow),
		"insert_open_above": insertAt(InsertOpenAbove),

		// Special commands
		"special_delete_char":     special(SpecialDeleteChar),
		"special_delete_to_end":   special(SpecialDeleteToEnd),
		"special_repeat_find":     special(SpecialRepeatFind),
		"special_repeat_find_rev": special(SpecialRepeatFindRev),
	}
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
