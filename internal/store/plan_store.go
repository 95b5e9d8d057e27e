package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// GetFrozenOrder returns the flexible-task ordering frozen for the
// given YYYY-MM-DD date, or nil when no order was persisted yet.
func (s *SQLiteStore) GetFrozenOrder(ctx context.Context, date string) ([]string, error) {
	var idsJSON string
	err := s.db.GetContext(ctx, &idsJSON,
		"SELECT ids FROM frozen_orders WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting frozen order for %s: %w", date, err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return nil, fmt.Errorf("unmarshaling frozen order for %s: %w", date, err)
	}
	return ids, nil
}

// SaveFrozenOrder persists the flexible-task ordering for a date.
// The first write for a date wins: re-freezing would let the visible
// plan reshuffle mid-day, which is exactly what freezing prevents.
func (s *SQLiteStore) SaveFrozenOrder(ctx context.Context, date string, ids []string) error {
	b, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshaling frozen order for %s: %w", date, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO frozen_orders (date, ids, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO NOTHING`,
		date, string(b), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving frozen order for %s: %w", date, err)
	}
	return nil
}
