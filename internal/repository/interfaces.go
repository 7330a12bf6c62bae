package repository

import (
	"context"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// KVRepo stores opaque string blobs under fixed keys.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type PlanEventRepo interface {
	Create(ctx context.Context, e *domain.PlanEvent) error
	ListRecent(ctx context.Context, limit int) ([]*domain.PlanEvent, error)
	Count(ctx context.Context) (int, error)
	// PruneKeepLatest deletes all but the newest keep events.
	PruneKeepLatest(ctx context.Context, keep int) (int64, error)
}
