package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/gradplan/internal/db"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/alexanderramin/gradplan/internal/repository"
	"github.com/google/uuid"
)

// DefaultEventRetention is how many plan events the log keeps.
const DefaultEventRetention = 500

// EventLogListener records every plan mutation in the plan_events table
// and trims the table to the most recent Retention rows.
type EventLogListener struct {
	uow       db.UnitOfWork
	retention int
	logger    *slog.Logger
	now       func() time.Time
}

func NewEventLogListener(uow db.UnitOfWork, retention int, logger *slog.Logger) *EventLogListener {
	if retention <= 0 {
		retention = DefaultEventRetention
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EventLogListener{
		uow:       uow,
		retention: retention,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (l *EventLogListener) PlanChanged(ctx context.Context, change PlanChange) {
	event := &domain.PlanEvent{
		ID:         uuid.New().String(),
		Kind:       change.Kind,
		Semester:   change.Semester,
		CourseCode: change.Course.Code,
		Credits:    change.Course.Credits,
		EntryID:    change.Course.ID,
		CreatedAt:  l.now(),
	}
	err := l.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLitePlanEventRepo(tx)
		if err := events.Create(ctx, event); err != nil {
			return err
		}
		_, err := events.PruneKeepLatest(ctx, l.retention)
		return err
	})
	if err != nil {
		// The plan itself is already saved; a missing history row is not fatal.
		l.logger.WarnContext(ctx, "failed to record plan event", "kind", event.Kind, "code", event.CourseCode, "error", err)
	}
}
