package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/switchubuntu/internal/db"
)

// Store appends and queries events.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new event. If event.ID is empty a UUID is generated.
func (s *Store) Record(ctx context.Context, event Event) error {
	if !event.Kind.Valid() {
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, visitor_id, kind, subject, detail)
		VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.VisitorID,
		string(event.Kind),
		event.Subject,
		event.Detail,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// QueryFilter controls which events are returned by Query.
type QueryFilter struct {
	VisitorID string
	Kind      Kind
	Subject   string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
}

func (f QueryFilter) where() (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.VisitorID != "" {
		clauses = append(clauses, "visitor_id = ?")
		args = append(args, f.VisitorID)
	}
	if f.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.Subject != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, f.Subject)
	}
	if f.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, f.Since.UTC().Format(time.DateTime))
	}
	if f.Until != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, f.Until.UTC().Format(time.DateTime))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Query returns events matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	where, args := filter.where()
	query := "SELECT id, timestamp, visitor_id, kind, subject, detail FROM events" + where
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	} else if filter.Offset > 0 {
		query += fmt.Sprintf(" LIMIT -1 OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e    Event
			ts   string
			kind string
		)
		if err := rows.Scan(&e.ID, &ts, &e.VisitorID, &kind, &e.Subject, &e.Detail); err != nil {
			return nil, err
		}
		e.Kind = Kind(kind)
		e.Timestamp = parseTimestamp(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Counts returns the number of events per kind, optionally restricted to
// events at or after since. Kinds with no events are reported as zero.
func (s *Store) Counts(ctx context.Context, since *time.Time) (map[Kind]int, error) {
	where, args := QueryFilter{Since: since}.where()
	rows, err := s.db.QueryContext(ctx, "SELECT kind, COUNT(*) FROM events"+where+" GROUP BY kind", args...)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	defer rows.Close()

	counts := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}

// DeleteBefore removes all events older than the given time.
// Returns the number of deleted rows.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM events WHERE timestamp < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old events: %w", err)
	}
	return res.RowsAffected()
}

func parseTimestamp(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
