package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/dayflow/internal/model"
)

// CreateCategory inserts a category. Generates a UUID if ID is empty;
// the well-known hobby/revision/adaptive categories keep their fixed
// ids.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c model.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, color, default_recurrence)
		VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, c.DefaultRecurrence,
	)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

// GetCategories retrieves all categories ordered by name.
func (s *SQLiteStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return categories, nil
}

// CreateGoal inserts a goal together with its subgoals. Generates
// UUIDs for empty ids; the planner never assigns ids itself.
func (s *SQLiteStore) CreateGoal(ctx context.Context, g model.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title must not be empty")
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	if g.Difficulty == "" {
		g.Difficulty = model.DifficultyMedium
	}
	if g.Priority == "" {
		g.Priority = model.PriorityMedium
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	weekdays, err := marshalWeekdays(g.Weekdays)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO goals (
			id, title, category_id, difficulty, deadline, priority,
			recurrence, weekdays, duration_min, fixed_clock, fixed_date,
			completed, created_at, last_done_at, started,
			snoozed_until, deferred_until, jackpot_awarded,
			repetitions, adaptive_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Title, g.CategoryID, g.Difficulty, g.Deadline, g.Priority,
		g.Recurrence, weekdays, g.DurationMin, g.FixedClock, g.FixedDate,
		boolToInt(g.Completed), g.CreatedAt, g.LastDoneAt, boolToInt(g.Started),
		g.SnoozedUntil, g.DeferredUntil, boolToInt(g.JackpotAwarded),
		g.Repetitions, g.AdaptiveStatus,
	)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	if err := insertSubgoals(ctx, tx, g.ID, g.Subgoals); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal: %w", err)
	}
	return nil
}

// UpdateGoal updates a goal by ID, replacing its subgoal list.
func (s *SQLiteStore) UpdateGoal(ctx context.Context, g model.Goal) error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("goal title must not be empty")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	weekdays, err := marshalWeekdays(g.Weekdays)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE goals SET
			title = ?, category_id = ?, difficulty = ?, deadline = ?,
			priority = ?, recurrence = ?, weekdays = ?, duration_min = ?,
			fixed_clock = ?, fixed_date = ?, completed = ?,
			last_done_at = ?, started = ?, snoozed_until = ?,
			deferred_until = ?, jackpot_awarded = ?, repetitions = ?,
			adaptive_status = ?
		WHERE id = ?`,
		g.Title, g.CategoryID, g.Difficulty, g.Deadline,
		g.Priority, g.Recurrence, weekdays, g.DurationMin,
		g.FixedClock, g.FixedDate, boolToInt(g.Completed),
		g.LastDoneAt, boolToInt(g.Started), g.SnoozedUntil,
		g.DeferredUntil, boolToInt(g.JackpotAwarded), g.Repetitions,
		g.AdaptiveStatus,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal %s: %w", g.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("goal %s not found", g.ID)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM subgoals WHERE goal_id = ?", g.ID); err != nil {
		return fmt.Errorf("clearing subgoals for goal %s: %w", g.ID, err)
	}
	if err := insertSubgoals(ctx, tx, g.ID, g.Subgoals); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing goal update: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal by ID. Cascades to subgoals; task logs
// referencing the goal survive as dangling history.
func (s *SQLiteStore) DeleteGoal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

// GetGoalByID retrieves a single goal with its subgoals in list order.
func (s *SQLiteStore) GetGoalByID(ctx context.Context, id string) (*model.Goal, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	subgoals, err := s.getSubgoals(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	g.Subgoals = subgoals[id]
	return &g, nil
}

// GetGoals retrieves all goals with their subgoals, ordered by
// creation time.
func (s *SQLiteStore) GetGoals(ctx context.Context) ([]model.Goal, error) {
	rows, err := s.db.QueryxContext(ctx, "SELECT * FROM goals ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var goals []model.Goal
	var ids []string
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
		ids = append(ids, g.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}

	if len(ids) == 0 {
		return goals, nil
	}
	subgoals, err := s.getSubgoals(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Subgoals = subgoals[goals[i].ID]
	}
	return goals, nil
}

// getSubgoals loads subgoals for the given goal ids, keyed by goal id,
// each list in sort order.
func (s *SQLiteStore) getSubgoals(ctx context.Context, goalIDs []string) (map[string][]model.Subgoal, error) {
	query, args, err := sqlx.In(
		"SELECT * FROM subgoals WHERE goal_id IN (?) ORDER BY goal_id, sort_order",
		goalIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("building subgoal query: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying subgoals: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Subgoal, len(goalIDs))
	for rows.Next() {
		var sg model.Subgoal
		var completed int
		err := rows.Scan(
			&sg.ID, &sg.GoalID, &sg.Title, &completed,
			&sg.SortOrder, &sg.Difficulty, &sg.DurationMin,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning subgoal row: %w", err)
		}
		sg.Completed = completed != 0
		out[sg.GoalID] = append(out[sg.GoalID], sg)
	}
	return out, rows.Err()
}

// insertSubgoals inserts a goal's subgoals within a transaction,
// preserving list order and generating ids where missing.
func insertSubgoals(ctx context.Context, tx *sqlx.Tx, goalID string, subgoals []model.Subgoal) error {
	for i, sg := range subgoals {
		if sg.ID == "" {
			sg.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subgoals (
				id, goal_id, title, completed, sort_order, difficulty, duration_min
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sg.ID, goalID, sg.Title, boolToInt(sg.Completed), i,
			sg.Difficulty, sg.DurationMin,
		)
		if err != nil {
			return fmt.Errorf("inserting subgoal %d of goal %s: %w", i, goalID, err)
		}
	}
	return nil
}

// rowScanner is satisfied by both sqlx.Row and sqlx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanGoal scans a goal row; subgoals are loaded separately.
func scanGoal(row rowScanner) (model.Goal, error) {
	var (
		g            model.Goal
		weekdaysJSON string
		completed    int
		started      int
		jackpot      int
	)

	err := row.Scan(
		&g.ID, &g.Title, &g.CategoryID, &g.Difficulty, &g.Deadline,
		&g.Priority, &g.Recurrence, &weekdaysJSON, &g.DurationMin,
		&g.FixedClock, &g.FixedDate, &completed, &g.CreatedAt,
		&g.LastDoneAt, &started, &g.SnoozedUntil, &g.DeferredUntil,
		&jackpot, &g.Repetitions, &g.AdaptiveStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Goal{}, err
		}
		return model.Goal{}, fmt.Errorf("scanning goal row: %w", err)
	}

	g.Completed = completed != 0
	g.Started = started != 0
	g.JackpotAwarded = jackpot != 0

	if weekdaysJSON != "" {
		var days []int
		if err := json.Unmarshal([]byte(weekdaysJSON), &days); err != nil {
			return model.Goal{}, fmt.Errorf("unmarshaling weekdays: %w", err)
		}
		for _, d := range days {
			g.Weekdays = append(g.Weekdays, time.Weekday(d))
		}
	}

	return g, nil
}

// marshalWeekdays serializes a weekday list as a JSON int array.
func marshalWeekdays(weekdays []time.Weekday) (string, error) {
	days := make([]int, 0, len(weekdays))
	for _, d := range weekdays {
		days = append(days, int(d))
	}
	b, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("marshaling weekdays: %w", err)
	}
	return string(b), nil
}
