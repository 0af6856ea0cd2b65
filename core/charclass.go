package core

import "unicode"

// CharClass partitions runes for word motions and text objects
type CharClass uint8

const (
	ClassSpace CharClass = iota
	ClassWord
	ClassPunct
)

// IsBlank reports whether r is a space or tab
func IsBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsWordRune reports whether r is a Unicode letter, digit or underscore
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Classify returns the class of r
// With big set, word and punctuation collapse into one non-space class
func Classify(r rune, big bool) CharClass {
	if IsBlank(r) {
		return ClassSpace
	}
	if big || IsWordRune(r) {
		return ClassWord
	}
	return ClassPunct
}
