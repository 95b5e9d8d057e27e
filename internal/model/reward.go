package model

import "time"

// RewardBlock is a fixed recreational time window, independent of
// goals and categories. Start and End define one occurrence's
// template; the recurrence rule projects it onto other dates.
type RewardBlock struct {
	ID         string         `json:"id" db:"id"`
	Label      string         `json:"label" db:"label"`
	Start      time.Time      `json:"start" db:"start"`
	End        time.Time      `json:"end" db:"end"`
	Recurrence string         `json:"recurrence" db:"recurrence"`
	Weekdays   []time.Weekday `json:"weekdays,omitempty" db:"-"`
}

// DurationMin returns the template's length in whole minutes,
// floored at zero for degenerate templates.
func (b *RewardBlock) DurationMin() int {
	d := int(b.End.Sub(b.Start).Minutes())
	if d < 0 {
		return 0
	}
	return d
}
