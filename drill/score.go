package drill

import (
	"time"
)

const (
	// MaxRoundScore is awarded for an instant win
	MaxRoundScore = 1000

	// ExtraKeyPenalty is deducted per keystroke above par
	ExtraKeyPenalty = 10
)

// Score rates a won round by the share of the budget left, minus the
// penalty for keystrokes above par. Untimed rounds start from the maximum
func Score(budget, elapsed time.Duration, keys, par int) int {
	base := MaxRoundScore
	if budget > 0 {
		left := max(0, budget-elapsed)
		base = int(int64(left) * MaxRoundScore / int64(budget))
	}
	if par > 0 && keys > par {
		base -= (keys - par) * ExtraKeyPenalty
	}
	return max(0, base)
}
