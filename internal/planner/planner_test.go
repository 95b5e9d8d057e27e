package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/dayflow/internal/model"
)

func mkDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mkTime(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// Wednesday and Saturday anchors used across the planner tests.
var (
	testWeekday = mkDate(2026, time.September, 2)
	testWeekend = mkDate(2026, time.September, 5)
	testNow     = mkTime(2026, time.September, 2, 9, 0)
)

func workCategory() model.Category {
	return model.Category{
		ID:                "work",
		Name:              "Work",
		DefaultRecurrence: model.RecurrenceWeekdays,
	}
}

func baseSnapshot(goals ...model.Goal) *model.Snapshot {
	return &model.Snapshot{
		Categories: []model.Category{workCategory()},
		Goals:      goals,
		Settings:   model.DefaultSettings(),
	}
}

func planRequest(snap *model.Snapshot, date time.Time) Request {
	return Request{
		Snapshot:   snap,
		Tendencies: AggregateTendencies(snap.Logs, snap.Settings.WorkStartHour),
		Date:       date,
		Now:        testNow,
	}
}

func TestPlanDaySingleGoalOnWeekday(t *testing.T) {
	goal := model.Goal{
		ID:          "g1",
		Title:       "Write report",
		CategoryID:  "work",
		Difficulty:  model.DifficultyMedium,
		Priority:    model.PriorityMedium,
		Deadline:    timePtr(testWeekday.AddDate(0, 0, 10)),
		DurationMin: 60,
		CreatedAt:   testNow,
	}
	snap := baseSnapshot(goal)

	res := PlanDay(planRequest(snap, testWeekday))

	require.Len(t, res.Slots, 1)
	slot := res.Slots[0]
	assert.Equal(t, SlotTask, slot.Kind)
	assert.Equal(t, "06:00", slot.Start)
	assert.Equal(t, "07:00", slot.End)
	require.NotNil(t, slot.Candidate)
	assert.Equal(t, "g1", slot.Candidate.GoalID)
	assert.Equal(t, []string{"g1"}, res.PlacedGoalIDs)
}

func TestPlanDaySingleGoalSkipsWeekend(t *testing.T) {
	goal := model.Goal{
		ID:          "g1",
		Title:       "Write report",
		CategoryID:  "work",
		Priority:    model.PriorityMedium,
		Deadline:    timePtr(testWeekend.AddDate(0, 0, 10)),
		DurationMin: 60,
		CreatedAt:   testNow,
	}
	snap := baseSnapshot(goal)

	res := PlanDay(planRequest(snap, testWeekend))

	assert.Empty(t, res.Slots)
	assert.Empty(t, res.PlacedGoalIDs)
}

func TestPlanDayRewardBlockThenTask(t *testing.T) {
	goal := model.Goal{
		ID:          "g1",
		Title:       "Write report",
		CategoryID:  "work",
		Priority:    model.PriorityMedium,
		Deadline:    timePtr(testWeekday.AddDate(0, 0, 10)),
		DurationMin: 60,
		CreatedAt:   testNow,
	}
	snap := baseSnapshot(goal)
	snap.RewardBlocks = []model.RewardBlock{{
		ID:         "r1",
		Label:      "Morning walk",
		Start:      mkTime(2026, time.August, 1, 6, 0),
		End:        mkTime(2026, time.August, 1, 7, 0),
		Recurrence: model.RecurrenceDaily,
	}}

	res := PlanDay(planRequest(snap, testWeekday))

	require.Len(t, res.Slots, 2)
	assert.Equal(t, SlotReward, res.Slots[0].Kind)
	assert.Equal(t, "06:00", res.Slots[0].Start)
	assert.Equal(t, "07:00", res.Slots[0].End)
	assert.True(t, res.Slots[0].Fixed)

	assert.Equal(t, SlotTask, res.Slots[1].Kind)
	assert.Equal(t, "07:00", res.Slots[1].Start)
	assert.Equal(t, "08:00", res.Slots[1].End)
}

func TestPlanDayRevisionGoalAlwaysIncludedUntilCompleted(t *testing.T) {
	goal := model.Goal{
		ID:         "rev1",
		Title:      "Review flashcards",
		CategoryID: model.CategoryRevision,
		Priority:   model.PriorityMedium,
		CreatedAt:  testNow,
	}
	snap := baseSnapshot(goal)
	snap.Categories = append(snap.Categories, model.Category{
		ID: model.CategoryRevision, Name: "Revision",
	})

	for _, target := range []time.Time{testWeekday, testWeekend, testWeekday.AddDate(0, 0, 30)} {
		res := PlanDay(planRequest(snap, target))
		require.Len(t, res.Slots, 1, "revision goal missing on %s", target)
		assert.Equal(t, SlotTask, res.Slots[0].Kind)
	}
}

func TestPlanWeekHobbyQuota(t *testing.T) {
	hobby := model.Goal{
		ID:         "h1",
		Title:      "Paint",
		CategoryID: model.CategoryHobby,
		CreatedAt:  testNow,
	}
	snap := baseSnapshot(hobby)

	plans := PlanWeek(snap, Tendencies{}, testNow)
	require.Len(t, plans, 7)

	days := 0
	for _, p := range plans {
		for _, s := range p.Slots {
			if s.Kind == SlotTask && s.Candidate != nil && s.Candidate.GoalID == "h1" {
				days++
			}
		}
	}
	assert.Equal(t, 2, days, "hobby must be placed on exactly its weekly quota of days")
}

func TestPlanWeekDoesNotReofferPlacedGoal(t *testing.T) {
	goal := model.Goal{
		ID:          "once1",
		Title:       "File taxes",
		CategoryID:  "work",
		Priority:    model.PriorityHigh,
		Recurrence:  model.RecurrenceOnce,
		Deadline:    timePtr(testNow.AddDate(0, 0, 5)),
		DurationMin: 90,
		CreatedAt:   testNow,
	}
	snap := baseSnapshot(goal)

	plans := PlanWeek(snap, Tendencies{}, testNow)

	seen := 0
	for _, p := range plans {
		for _, s := range p.Slots {
			if s.Candidate != nil && s.Candidate.GoalID == "once1" {
				seen++
			}
		}
	}
	assert.Equal(t, 1, seen)
}

func TestPlanDayFrozenOrderIsIdempotent(t *testing.T) {
	goals := []model.Goal{
		{ID: "a", Title: "A", CategoryID: "work", Priority: model.PriorityMedium, Deadline: timePtr(testWeekday.AddDate(0, 0, 3)), DurationMin: 30, CreatedAt: testNow},
		{ID: "b", Title: "B", CategoryID: "work", Priority: model.PriorityLow, Deadline: timePtr(testWeekday.AddDate(0, 0, 2)), DurationMin: 30, CreatedAt: testNow},
		{ID: "c", Title: "C", CategoryID: "work", Priority: model.PriorityMedium, Deadline: timePtr(testWeekday.AddDate(0, 0, 6)), DurationMin: 30, CreatedAt: testNow},
	}
	snap := baseSnapshot(goals...)

	first := PlanDay(planRequest(snap, testWeekday))
	require.NotEmpty(t, first.FlexibleIDs)

	reqFrozen := planRequest(snap, testWeekday)
	reqFrozen.FrozenOrder = first.FlexibleIDs

	second := PlanDay(reqFrozen)
	third := PlanDay(reqFrozen)

	assert.Equal(t, second.FlexibleIDs, third.FlexibleIDs)
	assert.Equal(t, first.FlexibleIDs, second.FlexibleIDs)
}

func TestPlanDaySlotsDoNotOverlap(t *testing.T) {
	goals := []model.Goal{
		{ID: "a", Title: "A", CategoryID: "work", Difficulty: model.DifficultyHard, Priority: model.PriorityHigh, Deadline: timePtr(testWeekday.AddDate(0, 0, 2)), DurationMin: 120, CreatedAt: testNow},
		{ID: "b", Title: "B", CategoryID: "work", Difficulty: model.DifficultyHard, Priority: model.PriorityMedium, Deadline: timePtr(testWeekday.AddDate(0, 0, 4)), DurationMin: 90, CreatedAt: testNow},
		{ID: "c", Title: "C", CategoryID: "work", Difficulty: model.DifficultyHard, Priority: model.PriorityMedium, Deadline: timePtr(testWeekday.AddDate(0, 0, 5)), DurationMin: 60, CreatedAt: testNow},
		{ID: "d", Title: "D", CategoryID: "work", Difficulty: model.DifficultyEasy, Priority: model.PriorityLow, Deadline: timePtr(testWeekday.AddDate(0, 0, 7)), DurationMin: 45, CreatedAt: testNow},
	}
	snap := baseSnapshot(goals...)
	snap.RewardBlocks = []model.RewardBlock{{
		ID:         "r1",
		Label:      "Lunch",
		Start:      mkTime(2026, time.August, 1, 12, 0),
		End:        mkTime(2026, time.August, 1, 13, 0),
		Recurrence: model.RecurrenceDaily,
	}}

	res := PlanDay(planRequest(snap, testWeekday))
	require.NotEmpty(t, res.Slots)

	prevEnd := ""
	for _, s := range res.Slots {
		if s.Kind == SlotOverlap || s.Kind == SlotOngoing || s.Kind == SlotPassed {
			continue
		}
		if prevEnd != "" {
			assert.LessOrEqual(t, prevEnd, s.Start,
				"slot %s starts before previous slot ended", s.ID)
		}
		prevEnd = s.End
	}
}

func TestPlanDayGoalWithSubgoalsRepresentedOnce(t *testing.T) {
	goal := model.Goal{
		ID:         "g1",
		Title:      "Course",
		CategoryID: "work",
		Priority:   model.PriorityMedium,
		Deadline:   timePtr(testWeekday.AddDate(0, 0, 5)),
		CreatedAt:  testNow,
		Subgoals: []model.Subgoal{
			{ID: "s1", Title: "Chapter 1", Completed: true},
			{ID: "s2", Title: "Chapter 2"},
			{ID: "s3", Title: "Chapter 3"},
		},
	}
	snap := baseSnapshot(goal)

	res := PlanDay(planRequest(snap, testWeekday))

	var hits []string
	for _, s := range res.Slots {
		if s.Candidate != nil && s.Candidate.GoalID == "g1" {
			hits = append(hits, s.Candidate.SubgoalID)
		}
	}
	require.Len(t, hits, 1, "goal must be represented exactly once")
	assert.Equal(t, "s2", hits[0], "only the first incomplete subgoal is offered")
}
