package model

import "time"

// Difficulty levels for goals and subgoals.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Priority levels. The planner maps these to urgency weights and
// deadline lead times.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Adaptive cadence statuses reported by the cadence tuner.
const (
	AdaptiveStable    = "stable"
	AdaptiveIncreased = "increased"
	AdaptiveDecreased = "decreased"
)

// Goal is a user-defined unit of work, optionally recurring and
// optionally decomposed into ordered subgoals.
type Goal struct {
	// ID is the unique identifier, assigned by the store at creation.
	ID string `json:"id" db:"id"`

	// Title is the human-readable summary of the goal.
	Title string `json:"title" db:"title"`

	// CategoryID references a Category. A missing category is tolerated
	// and falls back to "once" recurrence.
	CategoryID string `json:"category_id" db:"category_id"`

	// Difficulty is easy, medium, or hard. Drives strain accumulation
	// and peak-window alignment during placement.
	Difficulty string `json:"difficulty" db:"difficulty"`

	// Deadline is the target completion date, if any.
	Deadline *time.Time `json:"deadline,omitempty" db:"deadline"`

	// Priority is low, medium, high, or critical.
	Priority string `json:"priority" db:"priority"`

	// Recurrence overrides the category default when non-empty.
	Recurrence string `json:"recurrence,omitempty" db:"recurrence"`

	// Weekdays restricts a specific_days recurrence to these weekdays.
	Weekdays []time.Weekday `json:"weekdays,omitempty" db:"-"`

	// DurationMin is the user's base duration estimate in minutes.
	// Zero means unset; the planner defaults to 60.
	DurationMin int `json:"duration_min,omitempty" db:"duration_min"`

	// FixedClock pins the goal to a time of day. Free text; an
	// unparseable value demotes the goal to flexible scheduling.
	FixedClock string `json:"fixed_clock,omitempty" db:"fixed_clock"`

	// FixedDate pins the goal to a single calendar date. Free text; an
	// unparseable value is treated as no date constraint.
	FixedDate string `json:"fixed_date,omitempty" db:"fixed_date"`

	// Subgoals are owned by this goal and completed strictly in order.
	Subgoals []Subgoal `json:"subgoals,omitempty" db:"-"`

	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// LastDoneAt is the most recent completion instant, if any.
	LastDoneAt *time.Time `json:"last_done_at,omitempty" db:"last_done_at"`

	// Started records that the user has begun work at least once.
	Started bool `json:"started" db:"started"`

	// SnoozedUntil hides the goal from planning until it expires.
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty" db:"snoozed_until"`

	// DeferredUntil pushes the goal past whole planning days.
	DeferredUntil *time.Time `json:"deferred_until,omitempty" db:"deferred_until"`

	// JackpotAwarded marks that this cycle's jackpot has been granted.
	JackpotAwarded bool `json:"jackpot_awarded" db:"jackpot_awarded"`

	// Repetitions counts revision completions; the required revision
	// spacing doubles with each one.
	Repetitions int `json:"repetitions" db:"repetitions"`

	// AdaptiveStatus is the last cadence-tuner verdict for adaptive
	// category goals.
	AdaptiveStatus string `json:"adaptive_status,omitempty" db:"adaptive_status"`
}

// Subgoal is an ordered step of a Goal. Only the first incomplete
// subgoal is ever offered for scheduling.
type Subgoal struct {
	ID        string `json:"id" db:"id"`
	GoalID    string `json:"goal_id" db:"goal_id"`
	Title     string `json:"title" db:"title"`
	Completed bool   `json:"completed" db:"completed"`
	SortOrder int    `json:"sort_order" db:"sort_order"`

	// Difficulty and DurationMin override the parent goal when set.
	Difficulty  string `json:"difficulty,omitempty" db:"difficulty"`
	DurationMin int    `json:"duration_min,omitempty" db:"duration_min"`
}

// FirstIncompleteSubgoal returns the first incomplete subgoal in list
// order, or nil when there are no subgoals or all are complete.
func (g *Goal) FirstIncompleteSubgoal() *Subgoal {
	for i := range g.Subgoals {
		if !g.Subgoals[i].Completed {
			return &g.Subgoals[i]
		}
	}
	return nil
}
