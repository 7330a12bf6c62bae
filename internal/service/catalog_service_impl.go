package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/credits"
	"github.com/alexanderramin/gradplan/internal/domain"
)

type catalogService struct {
	mu      sync.RWMutex
	catalog domain.Catalog
	planner PlannerService
}

// NewCatalogService serves catalog lookups. A nil catalog is the
// "still loading" state; SetCatalog replaces it when the file appears or
// changes.
func NewCatalogService(catalog domain.Catalog, planner PlannerService) CatalogService {
	return &catalogService{catalog: catalog, planner: planner}
}

func (s *catalogService) Catalog() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *catalogService) SetCatalog(c domain.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}

func (s *catalogService) Lookup(_ context.Context, code string) (domain.Course, error) {
	catalog := s.Catalog()
	if catalog == nil {
		return domain.Course{}, ErrCatalogNotLoaded
	}
	c, ok := catalog.Lookup(code)
	if !ok {
		return domain.Course{}, fmt.Errorf("%s: %w", code, ErrCourseNotFound)
	}
	return c, nil
}

func (s *catalogService) Search(ctx context.Context, req app.CatalogSearchRequest) (*app.CatalogSearchResponse, error) {
	catalog := s.Catalog()
	if catalog == nil {
		return &app.CatalogSearchResponse{}, nil
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryAll
	}

	var planned []domain.Course
	if req.Semester != 0 {
		if !domain.IsPlanSemester(req.Semester) {
			return nil, fmt.Errorf("searching catalog for semester %d: %w", req.Semester, domain.ErrUnknownSemester)
		}
		if s.planner != nil {
			planned = s.planner.Plan(ctx).Courses(req.Semester)
		}
	}

	return &app.CatalogSearchResponse{
		Courses:       credits.FilterCatalog(catalog, category, req.Query, planned),
		CatalogLoaded: true,
	}, nil
}
