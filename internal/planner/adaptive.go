package planner

import (
	"time"

	"github.com/nhle/dayflow/internal/model"
)

// adaptiveWindowDays is the trailing window the cadence tuner inspects.
const adaptiveWindowDays = 14

// TuneCadence recomputes an adaptive goal's effective recurrence from
// its trailing 14-day completion rate. A struggling goal (< 60% of the
// expected completions) drops to daily cadence; a thriving daily goal
// (> 90%) relaxes to weekly.
func TuneCadence(g *model.Goal, logs []model.TaskLog, now time.Time, current string) (string, string) {
	if current == "" {
		current = model.RecurrenceDaily
	}

	cutoff := now.AddDate(0, 0, -adaptiveWindowDays)
	completions := 0
	for _, l := range logs {
		if l.GoalID == g.ID && l.Action == model.ActionCompleted && l.At.After(cutoff) {
			completions++
		}
	}

	expected := 5
	switch current {
	case model.RecurrenceDaily:
		expected = adaptiveWindowDays
	case model.RecurrenceWeekly:
		expected = 2
	}

	rate := float64(completions) / float64(max(expected, 1))
	switch {
	case rate < 0.6:
		return model.RecurrenceDaily, model.AdaptiveIncreased
	case rate > 0.9 && current == model.RecurrenceDaily:
		return model.RecurrenceWeekly, model.AdaptiveDecreased
	default:
		return current, model.AdaptiveStable
	}
}
