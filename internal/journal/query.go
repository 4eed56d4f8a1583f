package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// DefaultLimit caps query results when no limit is given
const DefaultLimit = 50

// QueryFilter selects journaled events
type QueryFilter struct {
	Since     *time.Time // inclusive
	Until     *time.Time // exclusive
	Kind      Kind
	SessionID string
	Subject   string
	Limit     int
}

// BuildWhereClause constructs the SQL WHERE clause and arguments for the filter
func (q *QueryFilter) BuildWhereClause() (string, []any) {
	var clauses []string
	var args []any

	if q.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, q.Since.Unix())
	}
	if q.Until != nil {
		clauses = append(clauses, "timestamp < ?")
		args = append(args, q.Until.Unix())
	}
	if q.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(q.Kind))
	}
	if q.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, q.SessionID)
	}
	if q.Subject != "" {
		clauses = append(clauses, "subject = ?")
		args = append(args, q.Subject)
	}

	whereClause := strings.Join(clauses, " AND ")
	slog.Debug("built where clause", "clause", whereClause, "arg_count", len(args))
	return whereClause, args
}

// Query returns matching events, newest first
func Query(db *sql.DB, q QueryFilter) ([]Event, error) {
	where, args := q.BuildWhereClause()
	query := "SELECT id, timestamp, session_id, kind, subject, detail FROM events"
	if where != "" {
		query += " WHERE " + where
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query += " ORDER BY timestamp DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e      Event
			ts     int64
			kind   string
			detail string
		)
		if err := rows.Scan(&e.ID, &ts, &e.SessionID, &kind, &e.Subject, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Time = time.Unix(ts, 0)
		e.Kind = Kind(kind)
		e.Detail = json.RawMessage(detail)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	slog.Debug("journal query completed", "events", len(events), "limit", limit)
	return events, nil
}

// ParseSince parses an absolute RFC 3339 time or natural language such as
// "2 hours ago" relative to now.
func ParseSince(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty time expression")
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t, nil
	}

	result, err := naturaldate.Parse(input, now)
	if err != nil {
		slog.Warn("failed to parse natural language date", "input", input, "error", err)
		return time.Time{}, fmt.Errorf("failed to parse natural date '%s': %w", input, err)
	}
	slog.Debug("parsed natural language date", "input", input, "result", result)
	return result, nil
}
