package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	work_start_hour INTEGER NOT NULL DEFAULT 6,
	work_end_hour   INTEGER NOT NULL DEFAULT 21,
	peak_start_hour INTEGER NOT NULL DEFAULT 9,
	peak_end_hour   INTEGER NOT NULL DEFAULT 12
);

CREATE TABLE IF NOT EXISTS categories (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	color              TEXT NOT NULL DEFAULT '',
	default_recurrence TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS goals (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	category_id     TEXT NOT NULL DEFAULT '',
	difficulty      TEXT NOT NULL DEFAULT 'medium',
	deadline        DATETIME,
	priority        TEXT NOT NULL DEFAULT 'medium',
	recurrence      TEXT NOT NULL DEFAULT '',
	weekdays        TEXT NOT NULL DEFAULT '[]',
	duration_min    INTEGER NOT NULL DEFAULT 0,
	fixed_clock     TEXT NOT NULL DEFAULT '',
	fixed_date      TEXT NOT NULL DEFAULT '',
	completed       INTEGER NOT NULL DEFAULT 0,
	created_at      DATETIME NOT NULL,
	last_done_at    DATETIME,
	started         INTEGER NOT NULL DEFAULT 0,
	snoozed_until   DATETIME,
	deferred_until  DATETIME,
	jackpot_awarded INTEGER NOT NULL DEFAULT 0,
	repetitions     INTEGER NOT NULL DEFAULT 0,
	adaptive_status TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS subgoals (
	id           TEXT PRIMARY KEY,
	goal_id      TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
	title        TEXT NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	sort_order   INTEGER NOT NULL DEFAULT 0,
	difficulty   TEXT NOT NULL DEFAULT '',
	duration_min INTEGER NOT NULL DEFAULT 0
);

-- task_logs has no foreign key to goals: logs are append-only history
-- and may outlive the goal they reference.
CREATE TABLE IF NOT EXISTS task_logs (
	id           TEXT PRIMARY KEY,
	goal_id      TEXT NOT NULL DEFAULT '',
	subgoal_id   TEXT NOT NULL DEFAULT '',
	category_id  TEXT NOT NULL DEFAULT '',
	action       TEXT NOT NULL,
	at           DATETIME NOT NULL,
	hour         INTEGER NOT NULL DEFAULT 0,
	actual_min   INTEGER NOT NULL DEFAULT 0,
	estimate_min INTEGER NOT NULL DEFAULT 0,
	reason       TEXT NOT NULL DEFAULT '',
	debt_delta   INTEGER NOT NULL DEFAULT 0,
	gain_delta   INTEGER NOT NULL DEFAULT 0,
	jackpot      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reward_blocks (
	id         TEXT PRIMARY KEY,
	label      TEXT NOT NULL,
	start_at   DATETIME NOT NULL,
	end_at     DATETIME NOT NULL,
	recurrence TEXT NOT NULL DEFAULT 'once',
	weekdays   TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS frozen_orders (
	date       TEXT PRIMARY KEY,
	ids        TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_subgoals_goal_id ON subgoals(goal_id);
CREATE INDEX IF NOT EXISTS idx_task_logs_goal_id ON task_logs(goal_id);
CREATE INDEX IF NOT EXISTS idx_task_logs_category_id ON task_logs(category_id);
CREATE INDEX IF NOT EXISTS idx_task_logs_at ON task_logs(at);
CREATE INDEX IF NOT EXISTS idx_goals_category_id ON goals(category_id);
CREATE INDEX IF NOT EXISTS idx_goals_completed ON goals(completed);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_task_logs_action_at ON task_logs(action, at);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
