package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/dayflow/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite
// database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys. Task logs deliberately carry no foreign
	// keys so dangling goal references stay readable.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// LoadSnapshot reads the entire user-data view in one call. The
// planner consumes the snapshot as an immutable value; it never
// touches the store itself.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.GetGoals(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := s.GetRewardBlocks(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.GetLogs(ctx, LogFilter{})
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{
		Categories:   categories,
		Goals:        goals,
		RewardBlocks: blocks,
		Logs:         logs,
		Settings:     settings,
	}, nil
}

// GetSettings returns the singleton settings row, falling back to the
// defaults when none was saved yet.
func (s *SQLiteStore) GetSettings(ctx context.Context) (model.Settings, error) {
	var out model.Settings
	err := s.db.QueryRowxContext(ctx, `
		SELECT work_start_hour, work_end_hour, peak_start_hour, peak_end_hour
		FROM settings WHERE id = 1`,
	).Scan(&out.WorkStartHour, &out.WorkEndHour, &out.PeakStartHour, &out.PeakEndHour)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("getting settings: %w", err)
	}
	return out, nil
}

// SaveSettings upserts the singleton settings row.
func (s *SQLiteStore) SaveSettings(ctx context.Context, set model.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (
			id, work_start_hour, work_end_hour, peak_start_hour, peak_end_hour
		) VALUES (1, ?, ?, ?, ?)`,
		set.WorkStartHour, set.WorkEndHour, set.PeakStartHour, set.PeakEndHour,
	)
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
