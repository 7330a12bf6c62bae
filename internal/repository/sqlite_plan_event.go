package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gradplan/internal/db"
	"github.com/alexanderramin/gradplan/internal/domain"
)

// SQLitePlanEventRepo implements PlanEventRepo using the plan_events table.
type SQLitePlanEventRepo struct {
	db db.DBTX
}

// NewSQLitePlanEventRepo creates a new SQLitePlanEventRepo.
func NewSQLitePlanEventRepo(conn db.DBTX) *SQLitePlanEventRepo {
	return &SQLitePlanEventRepo{db: conn}
}

func (r *SQLitePlanEventRepo) Create(ctx context.Context, e *domain.PlanEvent) error {
	query := `INSERT INTO plan_events (id, kind, semester, course_code, credits, entry_id, created_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM plan_events))`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Kind),
		e.Semester,
		e.CourseCode,
		e.Credits,
		e.EntryID,
		timeOrNow(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plan event: %w", err)
	}
	return nil
}

// ListRecent returns up to limit events, newest first. A non-positive limit
// returns every event.
func (r *SQLitePlanEventRepo) ListRecent(ctx context.Context, limit int) ([]*domain.PlanEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, kind, semester, course_code, credits, entry_id, created_at
		FROM plan_events ORDER BY seq DESC, created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plan events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLitePlanEventRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plan_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plan events: %w", err)
	}
	return n, nil
}

func (r *SQLitePlanEventRepo) PruneKeepLatest(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM plan_events WHERE id NOT IN (
		SELECT id FROM plan_events ORDER BY seq DESC, created_at DESC LIMIT ?)`
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning plan events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning plan events: %w", err)
	}
	return n, nil
}

// scanEvents scans multiple events from *sql.Rows.
func (r *SQLitePlanEventRepo) scanEvents(rows *sql.Rows) ([]*domain.PlanEvent, error) {
	var events []*domain.PlanEvent
	for rows.Next() {
		var e domain.PlanEvent
		var kind, createdAtStr string
		if err := rows.Scan(&e.ID, &kind, &e.Semester, &e.CourseCode, &e.Credits, &e.EntryID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning plan event row: %w", err)
		}
		e.Kind = domain.PlanEventKind(kind)

		created, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.CreatedAt = created
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan events: %w", err)
	}
	return events, nil
}
