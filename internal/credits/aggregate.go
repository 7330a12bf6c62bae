// Package credits holds the pure credit arithmetic behind the planner:
// aggregation, semester limit validation, recommendations and catalog
// filtering. Nothing here performs I/O.
package credits

import "github.com/alexanderramin/gradplan/internal/domain"

// CompletedCategoryCredits sums the credits of every completed course per
// category. Every known category is present, zero when nothing counted.
func CompletedCategoryCredits(completed []domain.CompletedSemester) domain.CategoryCredits {
	cc := domain.NewCategoryCredits()
	for _, sem := range completed {
		for _, course := range sem.Courses {
			if _, known := cc[course.Category]; !known {
				continue
			}
			cc[course.Category] += course.Credits
		}
	}
	return cc
}

// TotalCredits adds every planned course, across all semesters, to the
// completed per-category totals. Courses in unknown categories are ignored.
func TotalCredits(completed domain.CategoryCredits, plan domain.Plan) domain.CategoryCredits {
	total := domain.NewCategoryCredits()
	for cat, v := range completed {
		if _, known := total[cat]; known {
			total[cat] = v
		}
	}
	for _, courses := range plan.Semesters {
		for _, c := range courses {
			if _, known := total[c.Category]; !known {
				continue
			}
			total[c.Category] += c.Credits
		}
	}
	return total
}

// PlannedCredits sums the credits of every planned course.
func PlannedCredits(plan domain.Plan) float64 {
	var sum float64
	for _, courses := range plan.Semesters {
		for _, c := range courses {
			sum += c.Credits
		}
	}
	return sum
}

// TotalEarned sums all category totals.
func TotalEarned(cc domain.CategoryCredits) float64 {
	var sum float64
	for _, cat := range domain.Categories {
		sum += cc[cat]
	}
	return sum
}

// ElectiveTotal returns the combined credits of the elective categories.
func ElectiveTotal(cc domain.CategoryCredits) float64 {
	var sum float64
	for _, cat := range domain.ElectiveCategories {
		sum += cc[cat]
	}
	return sum
}
