package planner

import "github.com/nhle/dayflow/internal/model"

// resistanceBuckets covers work-shifted hours 0-29: a "late night"
// hour before work start shifts past 24 so it sorts after the normal
// day.
const resistanceBuckets = 30

// Tendencies bundles the per-category behavioral aggregates derived
// from historical logs. It is recomputed in full from the logs on
// every call; nothing is stored.
type Tendencies struct {
	// PreferredHour maps category id to the mean work-shifted hour of
	// completed/moved logs.
	PreferredHour map[string]float64

	// WeekdayCounts maps category id to completion counts per weekday
	// (time.Weekday index).
	WeekdayCounts map[string][7]int

	// Resistance maps category id to a histogram of skipped/snoozed
	// logs keyed by work-shifted hour.
	Resistance map[string][resistanceBuckets]int
}

// shiftHour moves hours before the work-day start past midnight so
// late-night activity compares after the evening, not before the
// morning.
func shiftHour(hour, workStart int) int {
	if hour < workStart {
		return hour + 24
	}
	return hour
}

// AggregateTendencies derives per-category preferred hours, weekday
// completion counts, and hourly resistance from the full log history.
// Logs referencing deleted goals still count; the aggregates are
// category-level.
func AggregateTendencies(logs []model.TaskLog, workStart int) Tendencies {
	t := Tendencies{
		PreferredHour: make(map[string]float64),
		WeekdayCounts: make(map[string][7]int),
		Resistance:    make(map[string][resistanceBuckets]int),
	}

	hourSum := make(map[string]int)
	hourCount := make(map[string]int)

	for _, l := range logs {
		switch l.Action {
		case model.ActionCompleted, model.ActionMoved:
			shifted := shiftHour(l.Hour, workStart)
			hourSum[l.CategoryID] += shifted
			hourCount[l.CategoryID]++

			counts := t.WeekdayCounts[l.CategoryID]
			counts[int(l.At.Weekday())]++
			t.WeekdayCounts[l.CategoryID] = counts

		case model.ActionSkipped, model.ActionSnoozed:
			shifted := shiftHour(l.Hour, workStart)
			if shifted >= 0 && shifted < resistanceBuckets {
				hist := t.Resistance[l.CategoryID]
				hist[shifted]++
				t.Resistance[l.CategoryID] = hist
			}
		}
	}

	for cat, n := range hourCount {
		t.PreferredHour[cat] = float64(hourSum[cat]) / float64(n)
	}

	return t
}

// ResistanceAt reports whether any skip/snooze history exists for the
// category at the given work-shifted hour.
func (t Tendencies) ResistanceAt(categoryID string, shiftedHour int) bool {
	if shiftedHour < 0 || shiftedHour >= resistanceBuckets {
		return false
	}
	hist, ok := t.Resistance[categoryID]
	return ok && hist[shiftedHour] > 0
}
