package audio

import (
	"errors"
)

// CueType identifies a feedback sound
type CueType int

const (
	CueWin    CueType = iota // Round target reached
	CueExpire                // Round budget ran out
	CueTick                  // Last seconds of a round
	CueReject                // Key not recognized
	cueTypeCount
)

func (c CueType) String() string {
	switch c {
	case CueWin:
		return "win"
	case CueExpire:
		return "expire"
	case CueTick:
		return "tick"
	case CueReject:
		return "reject"
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrDisabled       = errors.New("audio disabled")
	ErrNotInitialized = errors.New("audio not initialized")
)
