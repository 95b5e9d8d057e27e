package planner

import (
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a free-text time of day into minutes from
// midnight. Accepted forms: "HH:MM", "H:MM", "HHMM", a bare hour
// ("7", "19"), and 12-hour suffixed forms ("3pm", "11:30am"). Returns
// ok=false for anything else; callers treat failure as "no fixed time
// constraint".
func ParseClock(text string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, false
	}

	pmShift := 0
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		if strings.HasSuffix(s, "pm") {
			pmShift = 12
		}
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "am"), "pm"))
	}

	var hour, min int
	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, false
		}
		hour, min = h, m
	case len(s) == 4:
		// "HHMM" compact form.
		h, err1 := strconv.Atoi(s[:2])
		m, err2 := strconv.Atoi(s[2:])
		if err1 != nil || err2 != nil {
			return 0, false
		}
		hour, min = h, m
	default:
		h, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		hour = h
	}

	if pmShift > 0 && hour < 12 {
		hour += pmShift
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
	"2006/01/02",
}

// ParseDate parses a free-text calendar date. A "DD.MM" or "DD/MM"
// form without a year resolves against the given reference year.
// Returns ok=false for unrecognized input; callers treat failure as
// "no fixed date constraint".
func ParseDate(text string, refYear int) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}

	// Day-and-month shorthand without a year.
	for _, sep := range []string{".", "/"} {
		parts := strings.Split(s, sep)
		if len(parts) != 2 {
			continue
		}
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			continue
		}
		if day < 1 || day > 31 || month < 1 || month > 12 {
			continue
		}
		return time.Date(refYear, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	return time.Time{}, false
}

// sameDay reports whether two instants fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween returns whole calendar days from a to b, negative when b
// precedes a.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
