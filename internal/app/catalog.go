package app

import "github.com/alexanderramin/gradplan/internal/domain"

type CatalogSearchRequest struct {
	Category domain.Category
	Query    string
	// Semester, when set, excludes codes already planned in that semester.
	Semester int
}

type CatalogSearchResponse struct {
	Courses       []domain.Course
	CatalogLoaded bool
}
