package credits

import (
	"strings"

	"github.com/alexanderramin/gradplan/internal/domain"
	"golang.org/x/text/cases"
)

// FilterCatalog returns the catalog courses matching category (or every
// category for domain.CategoryAll) whose code or title contains query,
// compared with Unicode case folding. Codes already present in planned
// are excluded.
func FilterCatalog(catalog domain.Catalog, category domain.Category, query string, planned []domain.Course) []domain.Course {
	if catalog == nil {
		return nil
	}

	var courses []domain.Course
	if category == domain.CategoryAll || category == "" {
		courses = catalog.Flatten()
	} else {
		courses = catalog[category]
	}

	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	taken := make(map[string]bool, len(planned))
	for _, c := range planned {
		taken[c.Code] = true
	}

	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if taken[c.Code] {
			continue
		}
		if q != "" &&
			!strings.Contains(fold.String(c.Code), q) &&
			!strings.Contains(fold.String(c.Title), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}
