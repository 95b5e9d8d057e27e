package planner

import (
	"math"
	"time"

	"github.com/nhle/dayflow/internal/model"
)

// PlacedSet counts how many earlier simulated days placed each goal
// id. Non-hobby goals are excluded outright once present; hobbies
// count occurrences against their weekly quota.
type PlacedSet map[string]int

// deadlineHorizonDays is how far ahead ordinary goals are surfaced.
const deadlineHorizonDays = 14

// priorityWeight maps priority to the urgency base multiplier.
func priorityWeight(p string) float64 {
	switch p {
	case model.PriorityLow:
		return 1
	case model.PriorityHigh:
		return 2
	case model.PriorityCritical:
		return 3
	default:
		return 1.5
	}
}

// priorityLeadDays maps priority to the lead time subtracted from the
// deadline distance before applying the scheduling horizon.
func priorityLeadDays(p string) int {
	switch p {
	case model.PriorityLow:
		return 1
	case model.PriorityHigh:
		return 4
	case model.PriorityCritical:
		return 6
	default:
		return 2
	}
}

// blockOccursOn reports whether a reward block's recurrence projects
// an occurrence onto the target date.
func blockOccursOn(b *model.RewardBlock, target time.Time) bool {
	switch b.Recurrence {
	case model.RecurrenceDaily:
		return true
	case model.RecurrenceWeekdays:
		wd := target.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case model.RecurrenceWeekends:
		wd := target.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case model.RecurrenceWeekly:
		return target.Weekday() == b.Start.Weekday()
	case model.RecurrenceSpecificDays:
		for _, wd := range b.Weekdays {
			if wd == target.Weekday() {
				return true
			}
		}
		return false
	default:
		// Single occurrence on the template's own date.
		return sameDay(b.Start, target)
	}
}

// blockSkippedOn reports whether the block was already logged skipped
// for the target calendar date.
func blockSkippedOn(b *model.RewardBlock, logs []model.TaskLog, target time.Time) bool {
	for _, l := range logs {
		if l.GoalID == b.ID && l.Action == model.ActionSkipped && sameDay(l.At, target) {
			return true
		}
	}
	return false
}

// weekdayAllowed applies the recurrence weekday rules used by step 6
// of the goal walk.
func weekdayAllowed(recurrence string, weekdays []time.Weekday, target time.Time) bool {
	wd := target.Weekday()
	switch recurrence {
	case model.RecurrenceWeekdays:
		return wd != time.Saturday && wd != time.Sunday
	case model.RecurrenceWeekends:
		return wd == time.Saturday || wd == time.Sunday
	case model.RecurrenceSpecificDays:
		for _, w := range weekdays {
			if w == wd {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// BuildCandidates walks all reward blocks and goals and produces the
// fixed and flexible candidate pools for the target date. Hobby goals
// are handled separately by the rotator. The walk never fails: any
// malformed optional field demotes its constraint rather than
// rejecting the item.
func BuildCandidates(snap *model.Snapshot, target, now time.Time, placed PlacedSet) (fixed, flexible []Candidate) {
	for i := range snap.RewardBlocks {
		b := &snap.RewardBlocks[i]
		if !blockOccursOn(b, target) || blockSkippedOn(b, snap.Logs, target) {
			continue
		}
		start := b.Start.Hour()*60 + b.Start.Minute()
		fixed = append(fixed, Candidate{
			Kind:        KindReward,
			GoalID:      b.ID,
			Block:       b,
			Title:       b.Label,
			DurationMin: b.DurationMin(),
			FixedStart:  start,
		})
	}

	velocity := make(map[string]float64)
	for i := range snap.Goals {
		g := &snap.Goals[i]
		if g.Completed || g.CategoryID == model.CategoryHobby {
			continue
		}
		if placed[g.ID] > 0 {
			continue
		}

		if c, ok := evaluateGoal(g, snap, target, now, velocity); ok {
			if c.FixedStart >= 0 {
				fixed = append(fixed, c)
			} else {
				flexible = append(flexible, c)
			}
		}
	}

	return fixed, flexible
}

// evaluateGoal applies the eligibility walk to one goal and, when it
// survives, produces its candidate.
func evaluateGoal(g *model.Goal, snap *model.Snapshot, target, now time.Time, velocity map[string]float64) (Candidate, bool) {
	isRevision := g.CategoryID == model.CategoryRevision
	isAdaptive := g.CategoryID == model.CategoryAdaptive

	// Effective recurrence: goal override, else category default,
	// else once. A dangling category reference falls back to once.
	recurrence := g.Recurrence
	if recurrence == "" {
		if cat := snap.CategoryByID(g.CategoryID); cat != nil {
			recurrence = cat.DefaultRecurrence
		}
	}
	if recurrence == "" {
		recurrence = model.RecurrenceOnce
	}

	adaptiveBoost := 0.0
	if isAdaptive {
		recurrence, _ = TuneCadence(g, snap.Logs, now, recurrence)
		adaptiveBoost = 20
	}

	dueness := 0.0
	if isRevision {
		dueness = Dueness(g, target)
		if dueness <= revisionDueThreshold {
			return Candidate{}, false
		}
	}

	if g.SnoozedUntil != nil && g.SnoozedUntil.After(now) {
		return Candidate{}, false
	}

	endOfTarget := time.Date(target.Year(), target.Month(), target.Day(), 23, 59, 59, 0, target.Location())
	if g.DeferredUntil != nil && g.DeferredUntil.After(endOfTarget) {
		return Candidate{}, false
	}

	fixedDate, hasFixedDate := ParseDate(g.FixedDate, target.Year())

	// Already done today / this week. Revision goals run on their own
	// spacing and skip this check.
	if g.LastDoneAt != nil && !isRevision {
		if sameDay(*g.LastDoneAt, target) && !hasFixedDate && recurrence != model.RecurrenceOnce {
			return Candidate{}, false
		}
		if recurrence == model.RecurrenceWeekly && daysBetween(*g.LastDoneAt, target) < 7 {
			return Candidate{}, false
		}
	}

	if hasFixedDate && !sameDay(fixedDate, target) {
		return Candidate{}, false
	}

	if !hasFixedDate && !isRevision && !weekdayAllowed(recurrence, g.Weekdays, target) {
		return Candidate{}, false
	}

	// Representable item: the first incomplete subgoal when subgoals
	// exist, the goal itself otherwise.
	var sub *model.Subgoal
	if len(g.Subgoals) > 0 {
		sub = g.FirstIncompleteSubgoal()
		if sub == nil {
			return Candidate{}, false
		}
	}

	fixedStart, hasFixedTime := ParseClock(g.FixedClock)
	if !hasFixedTime {
		fixedStart = -1
	}

	// Deadline horizon: far-future ordinary work stays off the plan.
	if !hasFixedTime && !hasFixedDate &&
		g.Priority != model.PriorityCritical && !isRevision && !isAdaptive &&
		g.Deadline != nil {
		if daysBetween(target, *g.Deadline)-priorityLeadDays(g.Priority) > deadlineHorizonDays {
			return Candidate{}, false
		}
	}

	resurrected := false
	if g.LastDoneAt == nil {
		if g.Started {
			resurrected = true
		} else if now.Sub(g.CreatedAt) > 24*time.Hour {
			resurrected = true
		}
	}

	var score float64
	if isRevision {
		score = 40 + math.Min(dueness*20, 100)
	} else {
		score = priorityWeight(g.Priority) * 20
		if resurrected {
			score += 200
		}
		if g.Deadline != nil {
			days := daysBetween(target, *g.Deadline)
			switch {
			case days < 0:
				score += 150
			case days == 0:
				score += 100
			default:
				score += 100 / float64(days+1)
			}
		}
		score += adaptiveBoost
	}

	// Duration estimate, scaled by the category's velocity.
	dur := 60
	switch {
	case sub != nil && sub.DurationMin > 0:
		dur = sub.DurationMin
	case sub != nil && g.DurationMin > 0:
		dur = (g.DurationMin + len(g.Subgoals) - 1) / len(g.Subgoals)
	case g.DurationMin > 0:
		dur = g.DurationMin
	}
	v, ok := velocity[g.CategoryID]
	if !ok {
		v = Velocity(snap.Logs, g.CategoryID)
		velocity[g.CategoryID] = v
	}
	dur = int(math.Ceil(float64(dur) * v))

	c := Candidate{
		Kind:        KindGoal,
		GoalID:      g.ID,
		Goal:        g,
		Title:       g.Title,
		DurationMin: dur,
		Difficulty:  g.Difficulty,
		CategoryID:  g.CategoryID,
		Score:       score,
		FixedStart:  fixedStart,
		Revision:    isRevision,
		Adaptive:    isAdaptive,
		Resurrected: resurrected,
	}
	if sub != nil {
		c.Kind = KindSubgoal
		c.SubgoalID = sub.ID
		c.Title = sub.Title
		if sub.Difficulty != "" {
			c.Difficulty = sub.Difficulty
		}
	}
	return c, true
}
