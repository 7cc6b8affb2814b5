package journal

import "fmt"

// migrate creates the schema if it does not exist yet.
func (j *Journal) migrate() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			kind        TEXT NOT NULL CHECK (kind IN ('added', 'completed', 'reopened')),
			line        TEXT NOT NULL,
			priority    TEXT NOT NULL DEFAULT '',
			day         TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS event_tags (
			event_id INTEGER NOT NULL REFERENCES events(id),
			kind     TEXT NOT NULL CHECK (kind IN ('context', 'project')),
			tag      TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_events_kind_day ON events(kind, day);
		CREATE INDEX IF NOT EXISTS idx_event_tags_event ON event_tags(event_id);
	`)
	if err != nil {
		return fmt.Errorf("creating journal tables: %w", err)
	}

	return nil
}
