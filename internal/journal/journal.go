// Package journal records task activity in SQLite and serves
// completion statistics.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/rocin/internal/dateutil"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

// EventKind classifies a journal entry.
type EventKind string

// Event kinds.
const (
	EventAdded     EventKind = "added"
	EventCompleted EventKind = "completed"
	EventReopened  EventKind = "reopened"
)

const dayLayout = "2006-01-02"

// Journal is an append-only activity log backed by SQLite. Task files
// stay the source of truth; the journal only feeds statistics.
type Journal struct {
	db *sql.DB
}

// New opens (or creates) the journal database at path and runs
// migrations.
func New(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends an event for the task at the given time. The task's
// rendered line, priority, and tags are captured as they are now.
func (j *Journal) Record(ctx context.Context, kind EventKind, t *todotxt.Task, at time.Time) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	priority, _ := t.Priority()
	day := dateutil.TruncateToDay(at).Format(dayLayout)

	result, err := tx.ExecContext(ctx,
		`INSERT INTO events (kind, line, priority, day, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		string(kind), t.Render(), priority, day, at.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	eventID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	if err := insertTags(ctx, tx, eventID, "context", t.Contexts()); err != nil {
		return err
	}
	if err := insertTags(ctx, tx, eventID, "project", t.Projects()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing event: %w", err)
	}
	return nil
}

// insertTags writes one row per distinct tag.
func insertTags(ctx context.Context, tx *sql.Tx, eventID int64, kind string, tags []string) error {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event_tags (event_id, kind, tag) VALUES (?, ?, ?)`,
			eventID, kind, tag,
		); err != nil {
			return fmt.Errorf("inserting %s tag: %w", kind, err)
		}
	}
	return nil
}

// Totals holds event counts by kind.
type Totals struct {
	Added     int
	Completed int
	Reopened  int
}

// Totals counts events of each kind on or after since.
func (j *Journal) Totals(ctx context.Context, since time.Time) (*Totals, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM events WHERE day >= ? GROUP BY kind`,
		dateutil.TruncateToDay(since).Format(dayLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("querying totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	totals := &Totals{}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scanning totals: %w", err)
		}
		switch EventKind(kind) {
		case EventAdded:
			totals.Added = count
		case EventCompleted:
			totals.Completed = count
		case EventReopened:
			totals.Reopened = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading totals: %w", err)
	}
	return totals, nil
}

// DayCount is the number of completions on a single day.
type DayCount struct {
	Day   time.Time
	Count int
}

// CompletionsByDay returns per-day completion counts on or after
// since, oldest first.
func (j *Journal) CompletionsByDay(ctx context.Context, since time.Time) ([]DayCount, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT day, COUNT(*) FROM events WHERE kind = ? AND day >= ? GROUP BY day ORDER BY day`,
		string(EventCompleted), dateutil.TruncateToDay(since).Format(dayLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("querying completions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []DayCount
	for rows.Next() {
		var dayStr string
		var count int
		if err := rows.Scan(&dayStr, &count); err != nil {
			return nil, fmt.Errorf("scanning completions: %w", err)
		}
		day, err := time.Parse(dayLayout, dayStr)
		if err != nil {
			return nil, fmt.Errorf("parsing day: %w", err)
		}
		counts = append(counts, DayCount{Day: day, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading completions: %w", err)
	}
	return counts, nil
}

// TagCount is the number of completions carrying a tag.
type TagCount struct {
	Tag   string
	Count int
}

// TopContexts returns the context tags with the most completions on
// or after since, most frequent first.
func (j *Journal) TopContexts(ctx context.Context, since time.Time, limit int) ([]TagCount, error) {
	return j.topTags(ctx, "context", since, limit)
}

// TopProjects returns the project tags with the most completions on
// or after since, most frequent first.
func (j *Journal) TopProjects(ctx context.Context, since time.Time, limit int) ([]TagCount, error) {
	return j.topTags(ctx, "project", since, limit)
}

func (j *Journal) topTags(ctx context.Context, kind string, since time.Time, limit int) ([]TagCount, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT t.tag, COUNT(*) AS n
		 FROM event_tags t
		 JOIN events e ON e.id = t.event_id
		 WHERE t.kind = ? AND e.kind = ? AND e.day >= ?
		 GROUP BY t.tag
		 ORDER BY n DESC, t.tag
		 LIMIT ?`,
		kind, string(EventCompleted), dateutil.TruncateToDay(since).Format(dayLayout), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning top tags: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading top tags: %w", err)
	}
	return counts, nil
}

// Streak returns the number of consecutive days with at least one
// completion, counting back from today. A streak survives until a
// full day passes without completions: if today has none yet, the
// count starts at yesterday.
func (j *Journal) Streak(ctx context.Context, today time.Time) (int, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT DISTINCT day FROM events WHERE kind = ? ORDER BY day DESC`,
		string(EventCompleted),
	)
	if err != nil {
		return 0, fmt.Errorf("querying streak days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return 0, fmt.Errorf("scanning streak days: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("reading streak days: %w", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	cursor := dateutil.TruncateToDay(today)
	if days[0] != cursor.Format(dayLayout) {
		// No completion today yet; the streak may still be alive
		// through yesterday.
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if day != cursor.Format(dayLayout) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}
