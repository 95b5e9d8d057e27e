package planner

import (
	"sort"
	"time"

	"github.com/nhle/dayflow/internal/model"
)

// protectedFromTrim reports whether a flexible candidate survives
// capacity shedding unconditionally: imminent deadlines, critical
// priority, and the specially-cadenced categories.
func protectedFromTrim(c *Candidate, target time.Time) bool {
	if c.Hobby || c.Revision || c.Adaptive {
		return true
	}
	if c.Goal == nil {
		return false
	}
	if c.Goal.Priority == model.PriorityCritical {
		return true
	}
	if c.Goal.Deadline != nil && daysBetween(target, *c.Goal.Deadline) < 3 {
		return true
	}
	return false
}

// TrimToCapacity sorts the fixed pool by start time and sheds
// low-urgency flexible candidates that would overflow what remains of
// the work window after fixed commitments. The flexible pool is walked
// in its existing emission order, not by urgency; a pre-sort would
// change which items survive and is deliberately not done here.
func TrimToCapacity(fixed, flexible []Candidate, settings model.Settings, target time.Time) ([]Candidate, []Candidate) {
	sort.SliceStable(fixed, func(i, j int) bool {
		// Timeless entries sort last; they should not occur.
		a, b := fixed[i].FixedStart, fixed[j].FixedStart
		if a < 0 {
			return false
		}
		if b < 0 {
			return true
		}
		return a < b
	})

	fixedLoad := 0
	for i := range fixed {
		fixedLoad += fixed[i].DurationMin
	}
	capacity := settings.WorkWindowMin() - fixedLoad
	if capacity < 0 {
		capacity = 0
	}

	kept := make([]Candidate, 0, len(flexible))
	used := 0
	for i := range flexible {
		c := flexible[i]
		if protectedFromTrim(&c, target) {
			used += c.DurationMin
			kept = append(kept, c)
			continue
		}
		if used+c.DurationMin > capacity {
			continue
		}
		used += c.DurationMin
		kept = append(kept, c)
	}
	return fixed, kept
}
