package drill

import (
	"errors"
	"fmt"
	"time"

	"github.com/21andrewchang/vimgod/core"
)

// ErrInvalidRound is wrapped by every round validation failure
var ErrInvalidRound = errors.New("invalid round")

// Round is one timed exercise
type Round struct {
	Name   string
	Text   string
	Start  core.Position
	Target Target

	// Budget is the time allowed; zero means untimed
	Budget time.Duration

	// InsertMode opens the insert-family gate for this round
	InsertMode bool

	// Par is the keystroke count above which each key costs points; zero disables
	Par int
}

// Validate reports the first problem with the round definition
func (r Round) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRound)
	}
	if r.Budget < 0 {
		return fmt.Errorf("%w: %s: negative budget", ErrInvalidRound, r.Name)
	}
	if r.Par < 0 {
		return fmt.Errorf("%w: %s: negative par", ErrInvalidRound, r.Name)
	}
	b := core.NewBuffer(r.Text)
	if b.Clamp(r.Start, false) != r.Start {
		return fmt.Errorf("%w: %s: start %d:%d outside text", ErrInvalidRound, r.Name, r.Start.Row, r.Start.Col)
	}
	if err := r.Target.Validate(b); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRound, r.Name, err)
	}
	return nil
}
