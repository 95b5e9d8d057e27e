package planner

import (
	"fmt"
	"sort"

	"github.com/nhle/dayflow/internal/model"
)

const (
	// breakStrainThreshold triggers a recovery break once exceeded.
	breakStrainThreshold = 45

	// breakDurationMin is the length of an inserted recovery break.
	breakDurationMin = 15

	// strainRescoreThreshold is where accumulated strain starts
	// steering candidate selection toward lighter work.
	strainRescoreThreshold = 25

	breakLabel = "Brain Reset"
)

// strainDelta maps a placed task's difficulty to its strain cost.
func strainDelta(difficulty string) int {
	switch difficulty {
	case model.DifficultyHard:
		return 20
	case model.DifficultyEasy:
		return 5
	default:
		return 10
	}
}

// placer is the placement engine's mutable state for one day.
type placer struct {
	settings  model.Settings
	tend      Tendencies
	weekShare map[string]float64

	clock     int // simulation clock, minutes from midnight
	viewStart int
	strain    int

	lastCategory string
	streak       int

	flexible []Candidate
	frozen   []string

	slots  []ScheduleSlot
	placed []Candidate
	seq    int
}

// place runs the placement loop: fixed items in time order interleaved
// with gap-filled flexible work, then one final fill to the end of the
// work window.
func (p *placer) place(fixed []Candidate) {
	for i := range fixed {
		f := fixed[i]
		start := f.FixedStart
		end := start + f.DurationMin

		switch {
		case start < p.clock:
			switch {
			case end <= p.viewStart:
				// Wholly before the view window: surface it, no
				// clock effect.
				p.emitFixed(f, SlotPassed, start, end)
				continue
			case start < p.viewStart:
				// Already underway as the view opens.
				p.emitFixed(f, SlotOngoing, start, end)
			default:
				// Double-booked against whatever ran long before
				// it. Surface it rather than hiding it.
				p.emitFixed(f, SlotOverlap, start, end)
			}
			if end > p.clock {
				p.clock = end
			}
			p.strain = 0

		default:
			p.fillGap(start)
			kind := SlotFixed
			if f.Kind == KindReward {
				kind = SlotReward
			}
			p.emitFixed(f, kind, start, end)
			p.clock = end
			p.strain = 0
		}
	}

	p.fillGap(p.settings.WorkEndHour * 60)
}

// fillGap fills [clock, limit) with flexible candidates, re-scoring
// the pool before every pick and inserting recovery breaks as strain
// accumulates.
func (p *placer) fillGap(limit int) {
	for {
		remaining := limit - p.clock
		if remaining <= 0 {
			return
		}

		threshold := 10
		for i := range p.flexible {
			if p.flexible[i].DurationMin <= 10 {
				threshold = 5
				break
			}
		}
		if remaining < threshold && !p.anyFits(remaining) {
			return
		}

		if p.strain > breakStrainThreshold && p.clock+breakDurationMin <= limit {
			p.emitBreak()
			p.clock += breakDurationMin
			p.strain = 0
			p.streak = 0
			continue
		}

		p.rescore()
		p.order()

		idx := -1
		for i := range p.flexible {
			if p.flexible[i].DurationMin <= remaining {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}

		c := p.flexible[idx]
		p.flexible = append(p.flexible[:idx], p.flexible[idx+1:]...)

		p.emitTask(c)
		p.clock += c.DurationMin
		if c.CategoryID == p.lastCategory {
			p.streak++
		} else {
			p.lastCategory = c.CategoryID
			p.streak = 1
		}
		p.strain += strainDelta(c.Difficulty)
	}
}

func (p *placer) anyFits(remaining int) bool {
	for i := range p.flexible {
		if p.flexible[i].DurationMin <= remaining {
			return true
		}
	}
	return false
}

// rescore recomputes every flexible candidate's dynamic context score
// from its static urgency, applying the balance, streak, strain,
// hobby, peak-window, and preferred-hour modifiers.
func (p *placer) rescore() {
	hour := p.clock / 60
	shifted := shiftHour(hour, p.settings.WorkStartHour)
	inPeak := hour >= p.settings.PeakStartHour && hour < p.settings.PeakEndHour

	for i := range p.flexible {
		c := &p.flexible[i]
		s := c.Score

		// Weekly category balance.
		share := p.weekShare[c.CategoryID]
		if share > 0.4 {
			s -= 20
		} else if share < 0.1 {
			s += 20
		}

		// Category streak.
		if p.lastCategory != "" {
			if c.CategoryID == p.lastCategory {
				if p.streak < 2 {
					s += 10
				} else {
					s -= 50
				}
			} else {
				s += 5
			}
		}

		// Strain pacing.
		if p.strain > strainRescoreThreshold {
			switch {
			case c.Difficulty == model.DifficultyHard:
				s -= 100
			case c.Difficulty == model.DifficultyEasy:
				s += 50
			}
			if c.Hobby {
				s += 80
			}
		}

		if c.Hobby {
			s += 75
			if p.tend.ResistanceAt(c.CategoryID, shifted) {
				s -= 20
			}
		} else {
			// Peak-energy alignment.
			if inPeak {
				switch c.Difficulty {
				case model.DifficultyHard:
					s += 25
				case model.DifficultyEasy:
					s -= 10
				}
			} else if c.Difficulty == model.DifficultyHard {
				s -= 20
			}

			// Preferred-hour alignment.
			if pref, ok := p.tend.PreferredHour[c.CategoryID]; ok {
				d := float64(shifted) - pref
				if d >= -2 && d <= 2 {
					s += 15
				}
			}
		}

		c.ContextScore = s
	}
}

// order arranges the flexible pool for selection. With a frozen order,
// high/critical work cuts the line by static score and everything else
// keeps its frozen relative position (newcomers append); without one,
// pure dynamic score ordering.
func (p *placer) order() {
	if p.frozen == nil {
		sort.SliceStable(p.flexible, func(i, j int) bool {
			return p.flexible[i].ContextScore > p.flexible[j].ContextScore
		})
		return
	}

	frozenIdx := make(map[string]int, len(p.frozen))
	for i, id := range p.frozen {
		frozenIdx[id] = i
	}

	cuts := func(c *Candidate) bool {
		if c.Goal == nil {
			return false
		}
		pr := c.Goal.Priority
		return pr == model.PriorityHigh || pr == model.PriorityCritical
	}

	sort.SliceStable(p.flexible, func(i, j int) bool {
		a, b := &p.flexible[i], &p.flexible[j]
		ca, cb := cuts(a), cuts(b)
		if ca != cb {
			return ca
		}
		if ca {
			return a.Score > b.Score
		}
		ia, okA := frozenIdx[a.ID()]
		ib, okB := frozenIdx[b.ID()]
		if okA && okB {
			return ia < ib
		}
		// Newcomers keep their current relative order at the end.
		if okA != okB {
			return okA
		}
		return false
	})
}

func (p *placer) nextSlotID() string {
	p.seq++
	return fmt.Sprintf("slot-%03d", p.seq)
}

func (p *placer) emitFixed(c Candidate, kind SlotKind, start, end int) {
	cc := c
	p.slots = append(p.slots, ScheduleSlot{
		ID:        p.nextSlotID(),
		Start:     clockString(start),
		End:       clockString(end),
		Kind:      kind,
		Candidate: &cc,
		Fixed:     true,
	})
}

func (p *placer) emitBreak() {
	p.slots = append(p.slots, ScheduleSlot{
		ID:     p.nextSlotID(),
		Start:  clockString(p.clock),
		End:    clockString(p.clock + breakDurationMin),
		Kind:   SlotBreak,
		Reason: breakLabel,
	})
}

func (p *placer) emitTask(c Candidate) {
	cc := c
	p.slots = append(p.slots, ScheduleSlot{
		ID:        p.nextSlotID(),
		Start:     clockString(p.clock),
		End:       clockString(p.clock + c.DurationMin),
		Kind:      SlotTask,
		Candidate: &cc,
	})
	p.placed = append(p.placed, c)
}
