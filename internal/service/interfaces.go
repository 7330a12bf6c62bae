package service

import (
	"context"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/domain"
)

// PlannerService owns the course plan. Every successful mutation is
// persisted and then announced to subscribed listeners.
type PlannerService interface {
	Plan(ctx context.Context) domain.Plan
	AddCourse(ctx context.Context, semester int, course domain.Course) (domain.Course, error)
	RemoveCourse(ctx context.Context, semester, index int) (domain.Course, error)
	// Settle applies every queued follow-up immediately.
	Settle(ctx context.Context) error
	// Pending returns the number of queued follow-ups.
	Pending() int
	Subscribe(l PlanListener) (unsubscribe func())
	Close() error
}

type StatusService interface {
	GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error)
}

type CatalogService interface {
	Catalog() domain.Catalog
	SetCatalog(c domain.Catalog)
	Lookup(ctx context.Context, code string) (domain.Course, error)
	Search(ctx context.Context, req app.CatalogSearchRequest) (*app.CatalogSearchResponse, error)
}

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]*domain.PlanEvent, error)
}
