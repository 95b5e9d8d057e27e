// Package planner is the pure planning core: given an immutable user
// data snapshot, derived tendencies, and an explicit target date, it
// produces a time-ordered agenda for that date. It reads no storage
// and no ambient clock, so identical inputs always produce identical
// output.
package planner

import (
	"time"

	"github.com/nhle/dayflow/internal/model"
)

// Request carries every input of one planning run. Time is always
// explicit: Now is the caller's current instant and Date the target
// calendar date.
type Request struct {
	Snapshot   *model.Snapshot
	Tendencies Tendencies

	// Date is the target calendar date (time-of-day ignored).
	Date time.Time

	// Now is the current instant, injected by the caller.
	Now time.Time

	// StartOverride simulates a later day start, in minutes from
	// midnight. Nil plans from the work-window start.
	StartOverride *int

	// FrozenOrder is the flexible-task id ordering persisted on the
	// first generation for Date, or nil when none exists yet.
	FrozenOrder []string

	// Placed carries goal ids already placed on earlier simulated
	// days of a multi-day run.
	Placed PlacedSet
}

// Result is one planning run's output.
type Result struct {
	Slots []ScheduleSlot

	// FlexibleIDs is the candidate id order of task slots, suitable
	// for freezing.
	FlexibleIDs []string

	// PlacedGoalIDs lists parent goal ids placed as tasks, threaded
	// into later simulated days by the weekly roll-forward.
	PlacedGoalIDs []string

	Hobby HobbyStatus
}

// DayPlan pairs a roll-forward date with its planning result.
type DayPlan struct {
	Date time.Time
	Result
}

// PlanDay runs the full per-day pipeline: eligibility filtering, hobby
// rotation, capacity trimming, and placement. It never fails; degraded
// input degrades to a smaller (possibly empty) agenda.
func PlanDay(req Request) Result {
	snap := req.Snapshot
	settings := snap.Settings

	fixed, flexible := BuildCandidates(snap, req.Date, req.Now, req.Placed)

	hobby, hobbyStatus := RotateHobby(snap.Logs, snap.Goals, req.Date, req.Placed)
	if hobby != nil {
		flexible = append(flexible, *hobby)
	}

	fixed, flexible = TrimToCapacity(fixed, flexible, settings, req.Date)

	start := settings.WorkStartHour * 60
	if req.StartOverride != nil && *req.StartOverride > start {
		start = *req.StartOverride
	}

	p := &placer{
		settings:  settings,
		tend:      req.Tendencies,
		weekShare: weeklyCategoryShare(snap.Logs, req.Now),
		clock:     start,
		viewStart: start,
		flexible:  flexible,
		frozen:    req.FrozenOrder,
	}
	p.place(fixed)

	res := Result{Slots: p.slots, Hobby: hobbyStatus}
	for i := range p.placed {
		res.FlexibleIDs = append(res.FlexibleIDs, p.placed[i].ID())
		res.PlacedGoalIDs = append(res.PlacedGoalIDs, p.placed[i].GoalID)
	}
	return res
}

// PlanWeek re-runs the per-day pipeline across 7 consecutive dates
// starting from the current work-shifted day, threading forward the
// placed-goal set so later simulated days do not re-offer work already
// planned. Nothing persisted is touched.
func PlanWeek(snap *model.Snapshot, tend Tendencies, now time.Time) []DayPlan {
	anchor := now
	if now.Hour() < snap.Settings.WorkStartHour {
		// Before the work day starts, "today" is still yesterday.
		anchor = now.AddDate(0, 0, -1)
	}
	day0 := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	placed := make(PlacedSet)
	plans := make([]DayPlan, 0, 7)
	for i := 0; i < 7; i++ {
		date := day0.AddDate(0, 0, i)
		res := PlanDay(Request{
			Snapshot:   snap,
			Tendencies: tend,
			Date:       date,
			Now:        now,
			Placed:     placed,
		})
		for _, id := range res.PlacedGoalIDs {
			placed[id]++
		}
		plans = append(plans, DayPlan{Date: date, Result: res})
	}
	return plans
}

// weeklyCategoryShare computes each category's share of logged work
// time over the trailing 7 days. Dangling goal references still count;
// the shares are category-level.
func weeklyCategoryShare(logs []model.TaskLog, now time.Time) map[string]float64 {
	cutoff := now.AddDate(0, 0, -7)
	perCategory := make(map[string]int)
	total := 0
	for _, l := range logs {
		if l.Action != model.ActionCompleted || !l.At.After(cutoff) {
			continue
		}
		minutes := l.ActualMin
		if minutes <= 0 {
			minutes = l.EstimateMin
		}
		if minutes <= 0 {
			continue
		}
		perCategory[l.CategoryID] += minutes
		total += minutes
	}

	share := make(map[string]float64, len(perCategory))
	if total == 0 {
		return share
	}
	for cat, minutes := range perCategory {
		share[cat] = float64(minutes) / float64(total)
	}
	return share
}
