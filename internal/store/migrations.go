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

CREATE TABLE IF NOT EXISTS user_plants (
	id         TEXT PRIMARY KEY,
	date_added DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS care_history (
	id         TEXT PRIMARY KEY,
	plant_id   TEXT NOT NULL REFERENCES user_plants(id) ON DELETE CASCADE,
	action     TEXT NOT NULL,
	day        TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(plant_id, action, day)
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_care_history_plant ON care_history(plant_id);
CREATE INDEX IF NOT EXISTS idx_care_history_day ON care_history(day);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS reminders (
	id         TEXT PRIMARY KEY,
	message    TEXT NOT NULL,
	read       INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reminders_read ON reminders(read);
CREATE INDEX IF NOT EXISTS idx_reminders_created ON reminders(created_at);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
