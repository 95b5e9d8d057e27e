package model

import "time"

// Snapshot is the full immutable user-data view a planning run
// consumes. The planner never reads storage; the caller loads one
// snapshot and passes it in.
type Snapshot struct {
	Categories   []Category
	Goals        []Goal
	RewardBlocks []RewardBlock
	Logs         []TaskLog
	Settings     Settings
}

// CategoryByID returns the category with the given id, or nil when no
// such category exists (a tolerated condition).
func (s *Snapshot) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// FrozenOrder is the per-calendar-date persisted flexible-task
// ordering used to stabilize repeated re-planning within one day.
// It is written at most once per date, on the first successful
// generation for that date.
type FrozenOrder struct {
	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date" db:"date"`

	// IDs is the flexible-task id order decided at freeze time.
	IDs []string `json:"ids" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
