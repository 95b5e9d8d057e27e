package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/dayflow/internal/model"
)

// AppendLog inserts an immutable task-log record. The hour column is
// derived from the timestamp when unset so historical aggregation
// never sees a missing hour.
func (s *SQLiteStore) AppendLog(ctx context.Context, l model.TaskLog) error {
	if l.Action == "" {
		return fmt.Errorf("log action must not be empty")
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.At.IsZero() {
		l.At = time.Now().UTC()
	}
	if l.Hour == 0 {
		l.Hour = l.At.Hour()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO task_logs (
			id, goal_id, subgoal_id, category_id, action, at, hour,
			actual_min, estimate_min, reason, debt_delta, gain_delta, jackpot
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.GoalID, l.SubgoalID, l.CategoryID, l.Action, l.At, l.Hour,
		l.ActualMin, l.EstimateMin, l.Reason, l.DebtDelta, l.GainDelta,
		boolToInt(l.Jackpot),
	)
	if err != nil {
		return fmt.Errorf("appending task log: %w", err)
	}
	return nil
}

// GetLogs retrieves task logs matching the filter, oldest first.
func (s *SQLiteStore) GetLogs(ctx context.Context, filter LogFilter) ([]model.TaskLog, error) {
	query := "SELECT * FROM task_logs"
	var clauses []string
	var args []any

	if filter.GoalID != nil {
		clauses = append(clauses, "goal_id = ?")
		args = append(args, *filter.GoalID)
	}
	if filter.CategoryID != nil {
		clauses = append(clauses, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.Action != nil {
		clauses = append(clauses, "action = ?")
		args = append(args, *filter.Action)
	}
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY at"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying task logs: %w", err)
	}
	defer rows.Close()

	var logs []model.TaskLog
	for rows.Next() {
		var l model.TaskLog
		var jackpot int
		err := rows.Scan(
			&l.ID, &l.GoalID, &l.SubgoalID, &l.CategoryID, &l.Action,
			&l.At, &l.Hour, &l.ActualMin, &l.EstimateMin, &l.Reason,
			&l.DebtDelta, &l.GainDelta, &jackpot,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task log row: %w", err)
		}
		l.Jackpot = jackpot != 0
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
