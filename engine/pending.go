package engine

import (
	"github.com/21andrewchang/vimgod/input"
)

// maxCount saturates typed counts
const maxCount = 9999

// InputState tracks the multi-key parser state
type InputState uint8

const (
	StateIdle               InputState = iota // Default state, awaiting initial key
	StateCount                                // Accumulating numeric prefix (1-9 start, 0 continues)
	StateCharWait                             // After f/F/t/T, awaiting target character
	StateOperatorWait                         // After d, awaiting target or a second d
	StateOperatorCharWait                     // After d + f/F/t/T, awaiting target character
	StateOperatorObjectWait                   // After d + i, awaiting object key
	StatePrefixG                              // After g, awaiting second key
	StateObjectWait                           // After i in visual mode, awaiting object key
)

// pending is the partially typed command
type pending struct {
	state InputState

	// count is the count being typed, 0 when none
	count int

	// opCount is the count captured when the operator key was pressed
	opCount int

	charMotion input.MotionOp

	// combo is the command keys typed so far, for display
	combo []rune
}

func (p *pending) reset() {
	p.state = StateIdle
	p.count = 0
	p.opCount = 0
	p.charMotion = input.MotionNone
	p.combo = p.combo[:0]
}

// active reports whether any partial command is held
func (p *pending) active() bool {
	return p.state != StateIdle || p.count > 0 || len(p.combo) > 0
}

// pushDigit extends the count
func (p *pending) pushDigit(d int) {
	p.count = min(p.count*10+d, maxCount)
	if p.state == StateIdle {
		p.state = StateCount
	}
}

func (p *pending) push(r rune) {
	p.combo = append(p.combo, r)
}

// beginOperator moves the typed count into opCount
func (p *pending) beginOperator(r rune) {
	p.opCount = p.count
	p.count = 0
	p.state = StateOperatorWait
	p.push(r)
}

// effectiveCount multiplies the operator count with the motion count
// Returns 0 when neither was typed
func (p *pending) effectiveCount() int {
	if p.opCount == 0 && p.count == 0 {
		return 0
	}
	return min(max(1, p.opCount)*max(1, p.count), maxCount)
}
