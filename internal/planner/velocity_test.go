package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/dayflow/internal/model"
)

func completedLog(category string, actual, estimate int) model.TaskLog {
	return model.TaskLog{
		CategoryID:  category,
		Action:      model.ActionCompleted,
		ActualMin:   actual,
		EstimateMin: estimate,
		At:          testWeekday,
	}
}

func TestVelocityNeutralUnderThreeSamples(t *testing.T) {
	logs := []model.TaskLog{
		completedLog("work", 90, 60),
		completedLog("work", 90, 60),
	}

	assert.Equal(t, 1.0, Velocity(logs, "work"))
	assert.Equal(t, 1.0, Velocity(nil, "work"))
}

func TestVelocityMeanOfRatios(t *testing.T) {
	logs := []model.TaskLog{
		completedLog("work", 60, 60),
		completedLog("work", 90, 60),
		completedLog("work", 30, 60),
	}

	assert.InDelta(t, 1.0, Velocity(logs, "work"), 0.001)
}

func TestVelocityClampUpper(t *testing.T) {
	logs := []model.TaskLog{
		completedLog("work", 180, 60),
		completedLog("work", 180, 60),
		completedLog("work", 240, 60),
	}

	assert.Equal(t, 2.0, Velocity(logs, "work"))
}

func TestVelocityClampLower(t *testing.T) {
	logs := []model.TaskLog{
		completedLog("work", 10, 60),
		completedLog("work", 10, 60),
		completedLog("work", 10, 60),
	}

	assert.Equal(t, 0.5, Velocity(logs, "work"))
}

func TestVelocityIgnoresUnqualifiedLogs(t *testing.T) {
	logs := []model.TaskLog{
		completedLog("work", 180, 60),
		completedLog("work", 180, 60),
		completedLog("work", 180, 60),
		// Wrong category, wrong action, or missing durations.
		completedLog("other", 10, 60),
		{CategoryID: "work", Action: model.ActionSkipped, ActualMin: 10, EstimateMin: 60, At: testWeekday},
		{CategoryID: "work", Action: model.ActionCompleted, ActualMin: 10, At: testWeekday},
		{CategoryID: "work", Action: model.ActionCompleted, EstimateMin: 60, At: testWeekday},
	}

	assert.Equal(t, 2.0, Velocity(logs, "work"))
}
