package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apricot12/concierge/internal/domain"
)

// eventColumns is the canonical SELECT column list for events.
const eventColumns = `id, title, description, start_datetime, end_datetime,
		location, category, reminder_minutes, recurrence, created_at, updated_at`

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, sessionKey string, e *domain.Event) error {
	query := `INSERT INTO events (id, session_key, title, description,
		start_datetime, end_datetime, location, category, reminder_minutes,
		recurrence, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		sessionKey,
		e.Title,
		e.Description,
		e.StartDateTime,
		e.EndDateTime,
		e.Location,
		e.Category,
		e.ReminderMinutes,
		string(e.Recurrence),
		e.CreatedAt.Format(time.RFC3339Nano),
		e.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, sessionKey, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE session_key = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionKey, id)
	return r.scanEvent(row)
}

func (r *SQLiteEventRepo) ListAll(ctx context.Context, sessionKey string) ([]*domain.Event, error) {
	// rowid preserves insertion order.
	query := `SELECT ` + eventColumns + ` FROM events WHERE session_key = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListByDateRange(ctx context.Context, sessionKey, start, end string) ([]*domain.Event, error) {
	// Wall-clock strings sort lexicographically in chronological order,
	// so the closed range and the ascending sort are plain comparisons.
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE session_key = ? AND start_datetime >= ? AND start_datetime <= ?
		ORDER BY start_datetime`
	rows, err := r.db.QueryContext(ctx, query,
		sessionKey,
		domain.NormalizeWallClock(start),
		domain.NormalizeWallClock(end),
	)
	if err != nil {
		return nil, fmt.Errorf("listing events by date range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) SearchByTitle(ctx context.Context, sessionKey, q string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE session_key = ? AND LOWER(title) LIKE ? ESCAPE '\'
		ORDER BY rowid`
	pattern := "%" + strings.ToLower(escapeLike(q)) + "%"
	rows, err := r.db.QueryContext(ctx, query, sessionKey, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching events by title: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) Update(ctx context.Context, sessionKey string, e *domain.Event) error {
	query := `UPDATE events SET title = ?, description = ?, start_datetime = ?,
		end_datetime = ?, location = ?, category = ?, reminder_minutes = ?,
		recurrence = ?, updated_at = ?
		WHERE session_key = ? AND id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Description,
		e.StartDateTime,
		e.EndDateTime,
		e.Location,
		e.Category,
		e.ReminderMinutes,
		string(e.Recurrence),
		e.UpdatedAt.Format(time.RFC3339Nano),
		sessionKey,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, sessionKey, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE session_key = ? AND id = ?`, sessionKey, id)
	if err != nil {
		return false, fmt.Errorf("deleting event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return n > 0, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SQLiteEventRepo) scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	var recurrence, createdAt, updatedAt string

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.StartDateTime,
		&e.EndDateTime,
		&e.Location,
		&e.Category,
		&e.ReminderMinutes,
		&recurrence,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning event: %w", err)
	}

	e.Recurrence = domain.Recurrence(recurrence)
	e.CreatedAt = parseTimestamp(createdAt)
	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		e, err := r.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// escapeLike escapes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
