package model

// Well-known category IDs with special scheduling behavior.
// Categories with any other ID are ordinary work categories.
const (
	CategoryHobby    = "hobby"
	CategoryRevision = "revision"
	CategoryAdaptive = "adaptive"
)

// Recurrence constants shared by categories, goals, and reward blocks.
const (
	RecurrenceOnce         = "once"
	RecurrenceDaily        = "daily"
	RecurrenceWeekly       = "weekly"
	RecurrenceWeekdays     = "weekdays"
	RecurrenceWeekends     = "weekends"
	RecurrenceSpecificDays = "specific_days"
)

// Category is immutable reference data owned by the user's configuration.
type Category struct {
	ID                string `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	Color             string `json:"color" db:"color"`
	DefaultRecurrence string `json:"default_recurrence" db:"default_recurrence"`
}
