package importer

import (
	"github.com/alexanderramin/gradplan/internal/domain"
)

const defaultCourseType = "Theory"

// ConvertCatalog turns a validated schema into a domain.Catalog. Every
// known category gets an entry, empty when the file lists none.
func ConvertCatalog(schema CatalogSchema) domain.Catalog {
	catalog := make(domain.Catalog, len(domain.Categories))
	for _, cat := range domain.Categories {
		courses := schema[string(cat)]
		out := make([]domain.Course, 0, len(courses))
		for _, c := range courses {
			out = append(out, convertCourse(cat, c))
		}
		catalog[cat] = out
	}
	return catalog
}

func convertCourse(cat domain.Category, c CourseImport) domain.Course {
	courseType := domain.CoalesceStr(c.Type, defaultCourseType)
	if cat == domain.CategoryPI && c.Type == "" {
		courseType = domain.ProjectCourseType
	}
	return domain.Course{
		Code:              c.Code,
		Title:             c.Title,
		Category:          cat,
		Credits:           domain.Float64FromPtrWithDefault(0, c.Credits),
		Type:              courseType,
		IsNPTEL:           domain.BoolFromPtrWithDefault(false, c.IsNPTEL),
		CountsTowardLimit: domain.BoolFromPtrWithDefault(true, c.CountsTowardLimit),
	}
}

// ConvertCompleted turns a validated schema into domain records.
func ConvertCompleted(schema CompletedSchema) []domain.CompletedSemester {
	out := make([]domain.CompletedSemester, 0, len(schema))
	for _, sem := range schema {
		courses := make([]domain.CompletedCourse, 0, len(sem.Courses))
		for _, c := range sem.Courses {
			courses = append(courses, domain.CompletedCourse{
				Code:     c.Code,
				Title:    c.Title,
				Category: domain.Category(c.Category),
				Credits:  domain.Float64FromPtrWithDefault(0, c.Credits),
				Grade:    c.Grade,
			})
		}
		out = append(out, domain.CompletedSemester{Number: sem.Number, Courses: courses})
	}
	return out
}
