package app

import (
	"context"
	"time"

	"github.com/nhle/dayflow/internal/planner"
	"github.com/nhle/dayflow/internal/store"
)

// BuildDayPlan loads the snapshot and behavioral history, runs one
// planning pass for date, and freezes the flexible-task order on the
// first generation for the current work-shifted day. Past and future
// dates are never frozen; their plans are previews.
func BuildDayPlan(ctx context.Context, s store.Store, date, now time.Time, startOverride *int) (planner.Result, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return planner.Result{}, err
	}

	tend := planner.AggregateTendencies(snap.Logs, snap.Settings.WorkStartHour)

	dateStr := date.Format("2006-01-02")
	frozen, err := s.GetFrozenOrder(ctx, dateStr)
	if err != nil {
		return planner.Result{}, err
	}

	res := planner.PlanDay(planner.Request{
		Snapshot:      snap,
		Tendencies:    tend,
		Date:          date,
		Now:           now,
		StartOverride: startOverride,
		FrozenOrder:   frozen,
	})

	if frozen == nil && len(res.FlexibleIDs) > 0 && isWorkToday(date, now, snap.Settings.WorkStartHour) {
		if err := s.SaveFrozenOrder(ctx, dateStr, res.FlexibleIDs); err != nil {
			return planner.Result{}, err
		}
	}
	return res, nil
}

// BuildWeekPlan runs the 7-day simulated roll-forward. Nothing is
// persisted.
func BuildWeekPlan(ctx context.Context, s store.Store, now time.Time) ([]planner.DayPlan, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	tend := planner.AggregateTendencies(snap.Logs, snap.Settings.WorkStartHour)
	return planner.PlanWeek(snap, tend, now), nil
}

// isWorkToday reports whether date is the current work-shifted day:
// before the work window opens, "today" is still yesterday's date.
func isWorkToday(date, now time.Time, workStart int) bool {
	anchor := now
	if now.Hour() < workStart {
		anchor = now.AddDate(0, 0, -1)
	}
	return date.Year() == anchor.Year() && date.YearDay() == anchor.YearDay()
}
