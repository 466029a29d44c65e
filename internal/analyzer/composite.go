package analyzer

import (
	"math"

	"cvrobo/internal/types"
)

// Composite combines the sub-scores into the final ATS score using the
// configured weights. Rounding is half-up to the nearest integer; the
// result is always in [0,100] because the weights sum to 1.0 and each
// sub-score is already clamped.
func (e *Engine) Composite(sub types.SubScores) int {
	weighted := e.cfg.Composite.Keyword*float64(sub.KeywordMatch) +
		e.cfg.Composite.Format*float64(sub.Format) +
		e.cfg.Composite.Section*float64(sub.Section)
	return clampScore(roundHalfUp(weighted))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
