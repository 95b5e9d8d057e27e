package model

import "time"

// TaskLog action kinds.
const (
	ActionCompleted   = "completed"
	ActionSkipped     = "skipped"
	ActionSnoozed     = "snoozed"
	ActionRewardStart = "reward_start"
	ActionIncomplete  = "incomplete"
	ActionMoved       = "moved"
	ActionPaused      = "paused"
	ActionRelapse     = "relapse"
	ActionHabitDone   = "habit_done"
)

// TaskLog is an immutable, append-only historical record. It is the
// sole source of behavioral history for the planner. A log may
// reference a goal that no longer exists; such dangling references are
// legal and still contribute to category-level aggregates.
type TaskLog struct {
	ID         string `json:"id" db:"id"`
	GoalID     string `json:"goal_id" db:"goal_id"`
	SubgoalID  string `json:"subgoal_id,omitempty" db:"subgoal_id"`
	CategoryID string `json:"category_id" db:"category_id"`
	Action     string `json:"action" db:"action"`

	At   time.Time `json:"at" db:"at"`
	Hour int       `json:"hour" db:"hour"`

	// ActualMin and EstimateMin feed the velocity estimator when both
	// are present on a completed log.
	ActualMin   int `json:"actual_min,omitempty" db:"actual_min"`
	EstimateMin int `json:"estimate_min,omitempty" db:"estimate_min"`

	Reason    string `json:"reason,omitempty" db:"reason"`
	DebtDelta int    `json:"debt_delta,omitempty" db:"debt_delta"`
	GainDelta int    `json:"gain_delta,omitempty" db:"gain_delta"`
	Jackpot   bool   `json:"jackpot" db:"jackpot"`
}
