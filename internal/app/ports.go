package app

import (
	"context"

	"github.com/alexanderramin/gradplan/internal/domain"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type AddCourseUseCase interface {
	AddCourse(ctx context.Context, semester int, course domain.Course) (domain.Course, error)
}

type RemoveCourseUseCase interface {
	RemoveCourse(ctx context.Context, semester, index int) (domain.Course, error)
}

type CatalogSearchUseCase interface {
	Search(ctx context.Context, req CatalogSearchRequest) (*CatalogSearchResponse, error)
}
