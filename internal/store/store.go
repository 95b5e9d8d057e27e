package store

import (
	"context"

	"github.com/nhle/dayflow/internal/model"
)

// LogFilter controls filtering for task-log queries.
type LogFilter struct {
	GoalID     *string
	CategoryID *string
	Action     *string
	Limit      int
}

// Store defines the persistence interface for the planner's
// collaborating storage layer: the user-data snapshot, the append-only
// log history, and the per-date frozen-order record.
type Store interface {
	// === Snapshot ===

	// LoadSnapshot reads the full user-data view a planning run
	// consumes: categories, goals with owned subgoals, reward blocks,
	// logs, and settings.
	LoadSnapshot(ctx context.Context) (*model.Snapshot, error)

	// === Categories ===

	CreateCategory(ctx context.Context, c model.Category) error
	GetCategories(ctx context.Context) ([]model.Category, error)

	// === Goals ===

	CreateGoal(ctx context.Context, g model.Goal) error
	UpdateGoal(ctx context.Context, g model.Goal) error
	DeleteGoal(ctx context.Context, id string) error
	GetGoalByID(ctx context.Context, id string) (*model.Goal, error)
	GetGoals(ctx context.Context) ([]model.Goal, error)

	// === Task logs (append-only) ===

	AppendLog(ctx context.Context, l model.TaskLog) error
	GetLogs(ctx context.Context, filter LogFilter) ([]model.TaskLog, error)

	// === Reward blocks ===

	CreateRewardBlock(ctx context.Context, b model.RewardBlock) error
	DeleteRewardBlock(ctx context.Context, id string) error
	GetRewardBlocks(ctx context.Context) ([]model.RewardBlock, error)

	// === Settings ===

	GetSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, s model.Settings) error

	// === Frozen order ===

	// GetFrozenOrder returns the flexible-task ordering frozen for the
	// YYYY-MM-DD date, or nil when none was persisted yet.
	GetFrozenOrder(ctx context.Context, date string) ([]string, error)

	// SaveFrozenOrder persists the ordering for a date. The first
	// write wins; later writes for the same date are ignored so the
	// visible plan never reshuffles mid-day.
	SaveFrozenOrder(ctx context.Context, date string, ids []string) error
}
