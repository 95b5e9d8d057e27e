package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/dayflow/internal/model"
)

func newTestPlacer(flexible []Candidate) *placer {
	return &placer{
		settings:  model.DefaultSettings(),
		tend:      Tendencies{},
		weekShare: map[string]float64{},
		clock:     6 * 60,
		viewStart: 6 * 60,
		flexible:  flexible,
	}
}

func hardTask(id string) Candidate {
	return Candidate{
		Kind:        KindGoal,
		GoalID:      id,
		Goal:        &model.Goal{ID: id, Priority: model.PriorityMedium},
		Title:       id,
		DurationMin: 20,
		Difficulty:  model.DifficultyHard,
		CategoryID:  "work",
		FixedStart:  -1,
	}
}

func TestPlacementInsertsBreakUnderStrain(t *testing.T) {
	var flexible []Candidate
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5", "t6"} {
		flexible = append(flexible, hardTask(id))
	}

	p := newTestPlacer(flexible)
	p.place(nil)

	var kinds []SlotKind
	for _, s := range p.slots {
		kinds = append(kinds, s.Kind)
	}

	// Strain reaches 60 after three hard 20-minute tasks; the break
	// lands before any fourth task.
	require.GreaterOrEqual(t, len(kinds), 4)
	assert.Equal(t, []SlotKind{SlotTask, SlotTask, SlotTask, SlotBreak}, kinds[:4])

	breakSlot := p.slots[3]
	assert.Equal(t, "07:00", breakSlot.Start)
	assert.Equal(t, "07:15", breakSlot.End)
	assert.Equal(t, "Brain Reset", breakSlot.Reason)

	taskCount := 0
	for _, k := range kinds {
		if k == SlotTask {
			taskCount++
		}
	}
	assert.Equal(t, 6, taskCount, "every task still gets placed")
}

func TestPlacementFixedItemResetsStrain(t *testing.T) {
	flexible := []Candidate{hardTask("t1"), hardTask("t2"), hardTask("t3"), hardTask("t4")}
	fixed := []Candidate{{
		Kind:        KindReward,
		GoalID:      "r1",
		Title:       "Lunch",
		DurationMin: 60,
		FixedStart:  7 * 60,
	}}

	p := newTestPlacer(flexible)
	p.place(fixed)

	// Three tasks fill 06:00-07:00, lunch resets strain, so no break
	// appears afterwards.
	for _, s := range p.slots {
		assert.NotEqual(t, SlotBreak, s.Kind)
	}
	require.Len(t, p.slots, 5)
	assert.Equal(t, SlotReward, p.slots[3].Kind)
	assert.Equal(t, SlotTask, p.slots[4].Kind)
	assert.Equal(t, "08:00", p.slots[4].Start)
}

func TestPlacementPassedOngoingOverlap(t *testing.T) {
	fixed := []Candidate{
		{Kind: KindReward, GoalID: "before", Title: "Before", DurationMin: 30, FixedStart: 5 * 60},
		{Kind: KindReward, GoalID: "running", Title: "Running", DurationMin: 120, FixedStart: 9*60 + 30},
		{Kind: KindReward, GoalID: "doubled", Title: "Doubled", DurationMin: 30, FixedStart: 10 * 60},
	}

	p := newTestPlacer(nil)
	// Simulated start mid-morning: the view opens at 10:00.
	p.clock = 10 * 60
	p.viewStart = 10 * 60
	p.place(fixed)

	require.Len(t, p.slots, 3)

	assert.Equal(t, SlotPassed, p.slots[0].Kind, "wholly before the view start")
	assert.Equal(t, "05:00", p.slots[0].Start)

	assert.Equal(t, SlotOngoing, p.slots[1].Kind, "underway as the view opens")
	assert.Equal(t, "09:30", p.slots[1].Start)

	// The ongoing block pushed the clock to 11:30, past the third
	// item's start: an unavoidable double-booking, surfaced as such.
	assert.Equal(t, SlotOverlap, p.slots[2].Kind)
	assert.Equal(t, "10:00", p.slots[2].Start)
}

func TestPlacementFrozenOrderKeepsPositionsAndLetsCriticalCut(t *testing.T) {
	low := func(id string, score float64) Candidate {
		c := hardTask(id)
		c.Difficulty = model.DifficultyEasy
		c.DurationMin = 30
		c.Score = score
		return c
	}
	crit := hardTask("crit")
	crit.Goal.Priority = model.PriorityCritical
	crit.DurationMin = 30
	crit.Score = 10

	flexible := []Candidate{low("a", 50), low("b", 90), low("c", 70), crit}

	p := newTestPlacer(flexible)
	p.frozen = []string{"c", "a", "b"}
	p.place(nil)

	var order []string
	for _, s := range p.slots {
		if s.Kind == SlotTask {
			order = append(order, s.Candidate.GoalID)
		}
	}
	assert.Equal(t, []string{"crit", "c", "a", "b"}, order,
		"critical cuts the line; the rest keep the frozen order regardless of scores")
}

func TestPlacementFrozenOrderAppendsNewcomers(t *testing.T) {
	mk := func(id string) Candidate {
		c := hardTask(id)
		c.Difficulty = model.DifficultyEasy
		c.DurationMin = 30
		return c
	}

	flexible := []Candidate{mk("new1"), mk("a"), mk("new2"), mk("b")}

	p := newTestPlacer(flexible)
	p.frozen = []string{"b", "a"}
	p.place(nil)

	var order []string
	for _, s := range p.slots {
		if s.Kind == SlotTask {
			order = append(order, s.Candidate.GoalID)
		}
	}
	assert.Equal(t, []string{"b", "a", "new1", "new2"}, order)
}

func TestPlacementStopsWhenNothingFits(t *testing.T) {
	big := hardTask("big")
	big.DurationMin = 16 * 60

	p := newTestPlacer([]Candidate{big})
	p.place(nil)

	assert.Empty(t, p.slots, "an unfittable candidate leaves the day empty")
}

func TestRescoreStrainModifiers(t *testing.T) {
	hard := hardTask("hard")
	easy := hardTask("easy")
	easy.Difficulty = model.DifficultyEasy
	hobby := hardTask("hobby")
	hobby.Hobby = true
	hobby.CategoryID = model.CategoryHobby

	p := newTestPlacer([]Candidate{hard, easy, hobby})
	p.clock = 14 * 60 // outside the 09:00-12:00 peak window
	p.strain = 30

	p.rescore()

	byID := make(map[string]float64)
	for _, c := range p.flexible {
		byID[c.GoalID] = c.ContextScore
	}

	// Every category is under 10% weekly share here, so all carry the
	// +20 balance bonus on top of the listed modifiers.
	assert.InDelta(t, 20-100-20, byID["hard"], 0.001, "strained hard work sinks, off-peak hard sinks further")
	assert.InDelta(t, 20+50, byID["easy"], 0.001)
	assert.InDelta(t, 20+80+75, byID["hobby"], 0.001)
}

func TestRescorePeakAndPreferredHour(t *testing.T) {
	hard := hardTask("hard")
	easy := hardTask("easy")
	easy.Difficulty = model.DifficultyEasy
	preferred := hardTask("preferred")
	preferred.Difficulty = model.DifficultyMedium
	preferred.CategoryID = "morning"

	p := newTestPlacer([]Candidate{hard, easy, preferred})
	p.clock = 10 * 60 // inside the peak window
	p.tend = Tendencies{PreferredHour: map[string]float64{"morning": 11}}

	p.rescore()

	byID := make(map[string]float64)
	for _, c := range p.flexible {
		byID[c.GoalID] = c.ContextScore
	}

	assert.InDelta(t, 20+25, byID["hard"], 0.001)
	assert.InDelta(t, 20-10, byID["easy"], 0.001)
	assert.InDelta(t, 20+15, byID["preferred"], 0.001, "within 2 hours of the preferred hour")
}

func TestRescoreCategoryStreak(t *testing.T) {
	same := hardTask("same")
	same.Difficulty = model.DifficultyMedium
	other := hardTask("other")
	other.Difficulty = model.DifficultyMedium
	other.CategoryID = "chores"

	p := newTestPlacer([]Candidate{same, other})
	p.clock = 14 * 60
	p.lastCategory = "work"
	p.streak = 1

	p.rescore()
	byID := map[string]float64{}
	for _, c := range p.flexible {
		byID[c.GoalID] = c.ContextScore
	}
	assert.InDelta(t, 20+10, byID["same"], 0.001)
	assert.InDelta(t, 20+5, byID["other"], 0.001)

	p.streak = 2
	p.rescore()
	for _, c := range p.flexible {
		if c.GoalID == "same" {
			assert.InDelta(t, 20-50, c.ContextScore, 0.001,
				"a long streak repels the same category")
		}
	}
}

func TestRescoreWeeklyBalance(t *testing.T) {
	heavy := hardTask("heavy")
	heavy.Difficulty = model.DifficultyMedium
	heavy.CategoryID = "deep"
	light := hardTask("light")
	light.Difficulty = model.DifficultyMedium
	light.CategoryID = "light"
	mid := hardTask("mid")
	mid.Difficulty = model.DifficultyMedium
	mid.CategoryID = "mid"

	p := newTestPlacer([]Candidate{heavy, light, mid})
	p.clock = 14 * 60
	p.weekShare = map[string]float64{"deep": 0.55, "light": 0.05, "mid": 0.25}

	p.rescore()

	byID := map[string]float64{}
	for _, c := range p.flexible {
		byID[c.GoalID] = c.ContextScore
	}
	assert.InDelta(t, -20, byID["heavy"], 0.001)
	assert.InDelta(t, +20, byID["light"], 0.001)
	assert.InDelta(t, 0, byID["mid"], 0.001)
}

func TestPlacementSmallCandidateLowersGapThreshold(t *testing.T) {
	tiny := hardTask("tiny")
	tiny.Difficulty = model.DifficultyEasy
	tiny.DurationMin = 8

	fixed := []Candidate{{
		Kind: KindReward, GoalID: "r", Title: "R",
		DurationMin: 30, FixedStart: 6*60 + 8,
	}}

	p := newTestPlacer([]Candidate{tiny})
	p.place(fixed)

	// An 8-minute gap before the fixed block: below the default
	// 10-minute threshold, but the tiny candidate still fits.
	require.Len(t, p.slots, 2)
	assert.Equal(t, SlotTask, p.slots[0].Kind)
	assert.Equal(t, "06:00", p.slots[0].Start)
	assert.Equal(t, "06:08", p.slots[0].End)
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "06:00", clockString(6*60))
	assert.Equal(t, "19:05", clockString(19*60+5))
	assert.Equal(t, "00:00", clockString(0))
	assert.Equal(t, "00:30", clockString(24*60+30))
}
