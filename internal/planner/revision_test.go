package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/dayflow/internal/model"
)

func TestDuenessNeverCompleted(t *testing.T) {
	g := &model.Goal{ID: "r1", CategoryID: model.CategoryRevision}

	assert.Equal(t, 100.0, Dueness(g, testWeekday))
	assert.True(t, RevisionDue(g, testWeekday))
}

func TestDuenessDoublingSpacing(t *testing.T) {
	last := testWeekday.AddDate(0, 0, -4)

	for _, tc := range []struct {
		reps int
		want float64
	}{
		{0, 4.0},
		{1, 2.0},
		{2, 1.0},
		{3, 0.5},
	} {
		g := &model.Goal{Repetitions: tc.reps, LastDoneAt: timePtr(last)}
		assert.InDelta(t, tc.want, Dueness(g, testWeekday), 0.001, "reps=%d", tc.reps)
	}
}

func TestDuenessStrictlyDecreasesWithRepetitions(t *testing.T) {
	last := testWeekday.AddDate(0, 0, -10)

	for reps := 0; reps < 8; reps++ {
		lower := &model.Goal{Repetitions: reps, LastDoneAt: timePtr(last)}
		higher := &model.Goal{Repetitions: reps + 1, LastDoneAt: timePtr(last)}
		assert.Greater(t, Dueness(lower, testWeekday), Dueness(higher, testWeekday))
	}
}

func TestRevisionDueThreshold(t *testing.T) {
	// 3 days elapsed: due at 0 repetitions (3.0), not at 1 (1.5).
	last := testWeekday.AddDate(0, 0, -3)

	due := &model.Goal{Repetitions: 0, LastDoneAt: timePtr(last)}
	notDue := &model.Goal{Repetitions: 1, LastDoneAt: timePtr(last)}

	assert.True(t, RevisionDue(due, testWeekday))
	assert.False(t, RevisionDue(notDue, testWeekday))
}

func TestDuenessCompletionInFuture(t *testing.T) {
	// A completion timestamp after the target date clamps to zero
	// elapsed days instead of going negative.
	g := &model.Goal{LastDoneAt: timePtr(testWeekday.AddDate(0, 0, 2))}

	assert.Equal(t, 0.0, Dueness(g, testWeekday))
}
