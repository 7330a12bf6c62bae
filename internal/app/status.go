package app

import (
	"github.com/alexanderramin/gradplan/internal/credits"
	"github.com/alexanderramin/gradplan/internal/domain"
)

type StatusRequest struct {
	// MaxRecommendations caps the list; zero or negative returns all.
	MaxRecommendations int
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{MaxRecommendations: 3}
}

// SemesterView is one planned semester with its derived credit figures.
type SemesterView struct {
	Semester     int
	Courses      []domain.Course
	TotalCredits float64
	Validation   credits.SemesterValidation
}

type StatusResponse struct {
	Progress           credits.Progress
	CompletedCredits   domain.CategoryCredits
	TotalCredits       domain.CategoryCredits
	Recommendations    []credits.Recommendation
	Semesters          []SemesterView
	CatalogLoaded      bool
	CompletedSemesters int
	Warnings           []string
}
