package planner

import "github.com/nhle/dayflow/internal/model"

// velocityMinSamples is the number of qualifying logs required before
// the estimator trusts the history over the neutral multiplier.
const velocityMinSamples = 3

// Velocity returns the category's duration multiplier: the mean of
// actual/estimated ratios over completed logs carrying both durations,
// clamped to [0.5, 2.0]. With fewer than three samples it returns the
// neutral 1.0.
func Velocity(logs []model.TaskLog, categoryID string) float64 {
	var sum float64
	var n int
	for _, l := range logs {
		if l.Action != model.ActionCompleted || l.CategoryID != categoryID {
			continue
		}
		if l.ActualMin <= 0 || l.EstimateMin <= 0 {
			continue
		}
		sum += float64(l.ActualMin) / float64(l.EstimateMin)
		n++
	}

	if n < velocityMinSamples {
		return 1.0
	}

	v := sum / float64(n)
	if v < 0.5 {
		return 0.5
	}
	if v > 2.0 {
		return 2.0
	}
	return v
}
