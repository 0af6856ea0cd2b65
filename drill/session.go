package drill

import (
	"errors"
	"log"
	"time"

	"github.com/21andrewchang/vimgod/engine"
	"github.com/21andrewchang/vimgod/input"
)

// ErrNoRounds is returned when a session is created without rounds
var ErrNoRounds = errors.New("drill: no rounds")

// Outcome is the state of the current round
type Outcome uint8

const (
	Pending Outcome = iota
	Won
	Expired
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Expired:
		return "expired"
	}
	return "pending"
}

// Result records a finished round
type Result struct {
	Round   string
	Index   int
	Outcome Outcome
	Elapsed time.Duration
	Keys    int
	Score   int
	At      time.Time
}

// Config holds session options
type Config struct {
	// MaxRows is forwarded to the engine
	MaxRows int

	// Keys overrides the engine's default key table when non-nil
	Keys *input.KeyTable

	// OnCommand receives ':' commands typed in the engine
	OnCommand func(string)

	// OnOutcome fires once per finished round, before Key or Tick returns
	OnOutcome func(Result)
}

// Session drives a sequence of rounds over one engine
// Time is supplied by the caller on every call; the session owns no timers
type Session struct {
	cfg    Config
	rounds []Round
	index  int
	eng    *engine.Engine

	started time.Time
	keys    int
	outcome Outcome

	total   int
	results []Result
}

// NewSession validates rounds and builds the engine. Call Start to begin
func NewSession(rounds []Round, cfg Config) (*Session, error) {
	if len(rounds) == 0 {
		return nil, ErrNoRounds
	}
	for _, r := range rounds {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	s := &Session{
		cfg:    cfg,
		rounds: rounds,
	}
	s.eng = engine.New(engine.Config{
		InitialText: rounds[0].Text,
		MaxRows:     cfg.MaxRows,
		Keys:        cfg.Keys,
		OnCommand:   cfg.OnCommand,
	})
	return s, nil
}

// Engine returns the engine the rounds are played on
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// Round returns the current round and its 0-based index
func (s *Session) Round() (Round, int) {
	return s.rounds[s.index], s.index
}

// Len returns the number of rounds
func (s *Session) Len() int {
	return len(s.rounds)
}

// Outcome returns the state of the current round
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Keys returns the keystrokes counted in the current round
func (s *Session) Keys() int {
	return s.keys
}

// Total returns the sum of all round scores so far
func (s *Session) Total() int {
	return s.total
}

// Results returns the finished rounds in play order
func (s *Session) Results() []Result {
	return s.results
}

// Start loads the current round into the engine and starts its clock at now
func (s *Session) Start(now time.Time) {
	r := s.rounds[s.index]
	s.eng.SetInsertModeEnabled(r.InsertMode)
	s.eng.ResetDocumentAt(r.Text, r.Start)
	s.started = now
	s.keys = 0
	s.outcome = Pending
}

// Next advances to the following round and starts it
// Returns false, leaving the session on the last round, when none remain
func (s *Session) Next(now time.Time) bool {
	if s.index+1 >= len(s.rounds) {
		return false
	}
	s.index++
	s.Start(now)
	return true
}

// Key feeds one key event observed at the given time
// Keys after the budget are not fed; they expire the round instead
func (s *Session) Key(ev *input.KeyEvent, at time.Time) Outcome {
	if s.outcome != Pending {
		return s.outcome
	}
	if s.expired(at) {
		return s.finish(Expired, at)
	}

	if s.eng.HandleKeyDown(ev) {
		s.keys++
	}
	return s.Check(at)
}

// Check re-evaluates the round after a change made outside Key, such as
// a host-side GotoLine
func (s *Session) Check(at time.Time) Outcome {
	if s.outcome != Pending {
		return s.outcome
	}
	if s.expired(at) {
		return s.finish(Expired, at)
	}
	if s.rounds[s.index].Target.Reached(s.eng) {
		return s.finish(Won, at)
	}
	return Pending
}

// Tick checks the budget without a key, for hosts that redraw on a timer
func (s *Session) Tick(now time.Time) Outcome {
	if s.outcome == Pending && s.expired(now) {
		return s.finish(Expired, now)
	}
	return s.outcome
}

// Remaining returns the budget left at now; zero for untimed rounds
func (s *Session) Remaining(now time.Time) time.Duration {
	budget := s.rounds[s.index].Budget
	if budget == 0 {
		return 0
	}
	return max(0, budget-now.Sub(s.started))
}

func (s *Session) expired(now time.Time) bool {
	budget := s.rounds[s.index].Budget
	return budget > 0 && now.Sub(s.started) > budget
}

func (s *Session) finish(o Outcome, at time.Time) Outcome {
	r := s.rounds[s.index]
	elapsed := at.Sub(s.started)
	if r.Budget > 0 {
		elapsed = min(elapsed, r.Budget)
	}

	res := Result{
		Round:   r.Name,
		Index:   s.index,
		Outcome: o,
		Elapsed: elapsed,
		Keys:    s.keys,
		At:      at,
	}
	if o == Won {
		res.Score = Score(r.Budget, elapsed, s.keys, r.Par)
	}

	s.outcome = o
	s.total += res.Score
	s.results = append(s.results, res)
	log.Printf("drill: round %q %s in %v with %d keys, score %d", r.Name, o, elapsed, s.keys, res.Score)

	if s.cfg.OnOutcome != nil {
		s.cfg.OnOutcome(res)
	}
	return o
}
