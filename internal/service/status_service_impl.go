package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/credits"
	"github.com/alexanderramin/gradplan/internal/domain"
)

type statusService struct {
	planner   PlannerService
	catalog   CatalogService
	completed []domain.CompletedSemester
}

func NewStatusService(planner PlannerService, catalog CatalogService, completed []domain.CompletedSemester) StatusService {
	return &statusService{planner: planner, catalog: catalog, completed: completed}
}

func (s *statusService) GetStatus(ctx context.Context, req app.StatusRequest) (*app.StatusResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan := s.planner.Plan(ctx)
	catalog := s.catalog.Catalog()

	completed := credits.CompletedCategoryCredits(s.completed)
	total := credits.TotalCredits(completed, plan)

	recs := credits.Recommendations(total, catalog)
	if req.MaxRecommendations > 0 && len(recs) > req.MaxRecommendations {
		recs = recs[:req.MaxRecommendations]
	}

	resp := &app.StatusResponse{
		Progress:           credits.BuildProgress(total),
		CompletedCredits:   completed,
		TotalCredits:       total,
		Recommendations:    recs,
		Semesters:          buildSemesterViews(plan),
		CatalogLoaded:      catalog != nil,
		CompletedSemesters: len(s.completed),
	}
	for _, sv := range resp.Semesters {
		resp.Warnings = append(resp.Warnings, sv.Validation.Warnings...)
	}
	if resp.Progress.ElectiveStatus == credits.ElectiveOver {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"Electives (DE + OE) total %.1f credits, above the exact target of %.0f.",
			resp.Progress.ElectiveTotal, resp.Progress.ElectiveTarget))
	}
	return resp, nil
}

func buildSemesterViews(plan domain.Plan) []app.SemesterView {
	validations := credits.ValidatePlan(plan)
	views := make([]app.SemesterView, 0, len(domain.PlanSemesters))
	for i, sem := range domain.PlanSemesters {
		courses := plan.Courses(sem)
		total := 0.0
		for _, c := range courses {
			total += c.Credits
		}
		views = append(views, app.SemesterView{
			Semester:     sem,
			Courses:      courses,
			TotalCredits: total,
			Validation:   validations[i],
		})
	}
	return views
}
