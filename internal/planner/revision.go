package planner

import (
	"math"
	"time"

	"github.com/nhle/dayflow/internal/model"
)

// revisionDueThreshold is the due-ness above which a revision goal is
// offered for scheduling.
const revisionDueThreshold = 1.5

// Dueness computes the spaced-repetition urgency of a revision goal on
// the target date. A never-completed goal is maximally urgent (100).
// Otherwise the score is days-since-completion divided by 2^reps, so
// the required spacing doubles with every completed repetition.
func Dueness(g *model.Goal, target time.Time) float64 {
	if g.LastDoneAt == nil {
		return 100
	}
	days := daysBetween(*g.LastDoneAt, target)
	if days < 0 {
		days = 0
	}
	return float64(days) / math.Pow(2, float64(g.Repetitions))
}

// RevisionDue reports whether the goal's due-ness crosses the
// scheduling threshold on the target date.
func RevisionDue(g *model.Goal, target time.Time) bool {
	return Dueness(g, target) > revisionDueThreshold
}
