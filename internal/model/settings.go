package model

// Settings holds the user's environment configuration consumed by the
// planner: the daily work window and the peak-energy window, both as
// whole hours of day.
type Settings struct {
	WorkStartHour int `json:"work_start_hour" db:"work_start_hour"`
	WorkEndHour   int `json:"work_end_hour" db:"work_end_hour"`
	PeakStartHour int `json:"peak_start_hour" db:"peak_start_hour"`
	PeakEndHour   int `json:"peak_end_hour" db:"peak_end_hour"`
}

// DefaultSettings returns the standard 06:00-21:00 work window with a
// 09:00-12:00 peak-energy window.
func DefaultSettings() Settings {
	return Settings{
		WorkStartHour: 6,
		WorkEndHour:   21,
		PeakStartHour: 9,
		PeakEndHour:   12,
	}
}

// WorkWindowMin returns the length of the work window in minutes,
// floored at zero for inverted windows.
func (s Settings) WorkWindowMin() int {
	m := (s.WorkEndHour - s.WorkStartHour) * 60
	if m < 0 {
		return 0
	}
	return m
}
