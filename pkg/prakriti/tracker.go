// Package prakriti maintains the three-axis constitution scores derived
// from linguistic indicators in user messages and from explicit quiz
// submissions.
package prakriti

import (
	"math"
	"strings"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// indicatorIncrement is added to an axis accumulator per keyword hit
const indicatorIncrement = 10

// balancedSpread is the max-min spread below which a profile is considered
// balanced rather than dominated by a single dosha
const balancedSpread = 10

// quizTolerance is the accepted deviation from 100 for quiz score totals
const quizTolerance = 2

// Tracker scans messages for constitution indicator words. Word lists are
// fixed at construction and safe for concurrent use.
type Tracker struct {
	vataWords  []string
	pittaWords []string
	kaphaWords []string
}

// NewTracker creates a tracker with the built-in indicator word lists
func NewTracker() *Tracker {
	return &Tracker{
		vataWords:  []string{"thin", "dry", "cold", "anxious", "irregular", "constipat", "insomnia", "restless"},
		pittaWords: []string{"hot", "inflam", "acid", "anger", "compet", "rash", "burn", "sweat"},
		kaphaWords: []string{"heavy", "slow", "congest", "lethargic", "gain weight", "sleep lot", "calm"},
	}
}

// Indicators returns the raw score increments detected in a message,
// 10 units per indicator word hit
func (t *Tracker) Indicators(message string) domain.DoshaScores {
	lower := strings.ToLower(message)
	var ind domain.DoshaScores
	for _, w := range t.vataWords {
		if strings.Contains(lower, w) {
			ind.Vata += indicatorIncrement
		}
	}
	for _, w := range t.pittaWords {
		if strings.Contains(lower, w) {
			ind.Pitta += indicatorIncrement
		}
	}
	for _, w := range t.kaphaWords {
		if strings.Contains(lower, w) {
			ind.Kapha += indicatorIncrement
		}
	}
	return ind
}

// Accumulate adds indicator increments to the running scores and normalizes
// the result. The accumulators are a running total across a user's whole
// history, not a per-message score.
func (t *Tracker) Accumulate(current, indicators domain.DoshaScores) domain.DoshaScores {
	updated := domain.DoshaScores{
		Vata:  current.Vata + indicators.Vata,
		Pitta: current.Pitta + indicators.Pitta,
		Kapha: current.Kapha + indicators.Kapha,
	}
	return Normalize(updated)
}

// Normalize scales the three scores to sum to exactly 100. Vata and pitta
// become rounded percentages of the total; kapha absorbs the rounding
// remainder so the sum invariant holds without floating-point drift.
// A zero total is returned unchanged. Normalizing an already-normalized
// triple is a no-op within rounding.
func Normalize(s domain.DoshaScores) domain.DoshaScores {
	total := s.Total()
	if total == 0 {
		return s
	}
	vata := int(math.Round(float64(s.Vata) / float64(total) * 100))
	pitta := int(math.Round(float64(s.Pitta) / float64(total) * 100))
	return domain.DoshaScores{Vata: vata, Pitta: pitta, Kapha: 100 - vata - pitta}
}

// Dominant derives the dominant dosha label from normalized scores.
// When the max-min spread is under 10 points the constitution is
// "balanced"; otherwise the first axis holding the maximum wins,
// in vata, pitta, kapha order.
func Dominant(s domain.DoshaScores) string {
	maxScore := s.Vata
	minScore := s.Vata
	for _, v := range []int{s.Pitta, s.Kapha} {
		if v > maxScore {
			maxScore = v
		}
		if v < minScore {
			minScore = v
		}
	}
	if maxScore-minScore < balancedSpread {
		return "balanced"
	}
	switch maxScore {
	case s.Vata:
		return "vata"
	case s.Pitta:
		return "pitta"
	default:
		return "kapha"
	}
}

// WithinQuizTolerance reports whether submitted quiz scores sum to 100
// within the accepted tolerance band. Out-of-band totals are logged by the
// caller as warnings, never rejected.
func WithinQuizTolerance(s domain.DoshaScores) bool {
	total := s.Total()
	return total >= 100-quizTolerance && total <= 100+quizTolerance
}
