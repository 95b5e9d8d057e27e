package planner

import (
	"time"

	"github.com/nhle/dayflow/internal/model"
)

const (
	// hobbyWeeklyQuota is the most times one hobby is offered per
	// rolling week, counting simulated placements.
	hobbyWeeklyQuota = 2

	// hobbyNeglectCapDays caps the recency term so ancient hobbies do
	// not dominate forever.
	hobbyNeglectCapDays = 28

	// hobbyDefaultDurationMin is used when a hobby carries no estimate.
	hobbyDefaultDurationMin = 45
)

// RotateHobby picks at most one hobby goal for the target date: the
// most neglected candidate still under its weekly quota. Ties keep the
// earlier goal in input order. Returns a nil candidate with status
// "rest" when every hobby is current, or "none" when no hobbies exist.
func RotateHobby(logs []model.TaskLog, goals []model.Goal, target time.Time, placed PlacedSet) (*Candidate, HobbyStatus) {
	weekAgo := target.AddDate(0, 0, -7)

	var best *Candidate
	sawHobby := false

	for i := range goals {
		g := &goals[i]
		if g.CategoryID != model.CategoryHobby || g.Completed {
			continue
		}
		sawHobby = true

		weekly := placed[g.ID]
		for _, l := range logs {
			if l.GoalID == g.ID && l.Action == model.ActionCompleted && l.At.After(weekAgo) {
				weekly++
			}
		}
		if weekly >= hobbyWeeklyQuota {
			continue
		}

		daysSince := hobbyNeglectCapDays
		if g.LastDoneAt != nil {
			daysSince = daysBetween(*g.LastDoneAt, target)
			if daysSince > hobbyNeglectCapDays {
				daysSince = hobbyNeglectCapDays
			}
			if daysSince < 0 {
				daysSince = 0
			}
		}

		weeklyRate := float64(weekly) / 5
		if weeklyRate > 1 {
			weeklyRate = 1
		}
		neglect := float64(daysSince) / hobbyNeglectCapDays * (1 - weeklyRate)

		if best != nil && neglect <= best.NeglectScore {
			continue
		}

		dur := g.DurationMin
		if dur <= 0 {
			dur = hobbyDefaultDurationMin
		}
		best = &Candidate{
			Kind:         KindGoal,
			GoalID:       g.ID,
			Goal:         g,
			Title:        g.Title,
			DurationMin:  dur,
			Difficulty:   g.Difficulty,
			CategoryID:   g.CategoryID,
			FixedStart:   -1,
			Hobby:        true,
			NeglectScore: neglect,
			NeglectDays:  daysSince,
		}
	}

	if best == nil {
		if sawHobby {
			return nil, HobbyRest
		}
		return nil, HobbyNone
	}
	return best, HobbySelected
}
