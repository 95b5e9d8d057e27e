package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/dayflow/internal/model"
)

// CreateRewardBlock inserts a reward block. Generates a UUID if ID is
// empty.
func (s *SQLiteStore) CreateRewardBlock(ctx context.Context, b model.RewardBlock) error {
	if b.End.Before(b.Start) {
		return fmt.Errorf("reward block %q ends before it starts", b.Label)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Recurrence == "" {
		b.Recurrence = model.RecurrenceOnce
	}

	weekdays, err := marshalWeekdays(b.Weekdays)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reward_blocks (id, label, start_at, end_at, recurrence, weekdays)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Label, b.Start, b.End, b.Recurrence, weekdays,
	)
	if err != nil {
		return fmt.Errorf("creating reward block: %w", err)
	}
	return nil
}

// DeleteRewardBlock removes a reward block by ID.
func (s *SQLiteStore) DeleteRewardBlock(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reward_blocks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reward block %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reward block %s not found", id)
	}
	return nil
}

// GetRewardBlocks retrieves all reward blocks ordered by start time.
func (s *SQLiteStore) GetRewardBlocks(ctx context.Context) ([]model.RewardBlock, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM reward_blocks ORDER BY start_at")
	if err != nil {
		return nil, fmt.Errorf("querying reward blocks: %w", err)
	}
	defer rows.Close()

	var blocks []model.RewardBlock
	for rows.Next() {
		var b model.RewardBlock
		var weekdaysJSON string
		err := rows.Scan(&b.ID, &b.Label, &b.Start, &b.End, &b.Recurrence, &weekdaysJSON)
		if err != nil {
			return nil, fmt.Errorf("scanning reward block row: %w", err)
		}
		if weekdaysJSON != "" {
			var days []int
			if err := json.Unmarshal([]byte(weekdaysJSON), &days); err != nil {
				return nil, fmt.Errorf("unmarshaling reward block weekdays: %w", err)
			}
			for _, d := range days {
				b.Weekdays = append(b.Weekdays, time.Weekday(d))
			}
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
