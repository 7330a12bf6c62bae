package importer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// ValidateCatalogSchema checks a catalog before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalogSchema(schema CatalogSchema) []error {
	var errs []error
	codes := make(map[string]string)

	for key, courses := range schema {
		if !domain.ValidCategories[key] {
			errs = append(errs, fmt.Errorf("catalog: unknown category key %q", key))
			continue
		}
		for i, c := range courses {
			prefix := fmt.Sprintf("catalog.%s[%d]", key, i)
			errs = append(errs, validateCourse(prefix, key, c)...)
			if c.Code == "" {
				continue
			}
			if prev, dup := codes[c.Code]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate code %q (already in %s)", prefix, c.Code, prev))
			} else {
				codes[c.Code] = key
			}
		}
	}
	return errs
}

func validateCourse(prefix, key string, c CourseImport) []error {
	var errs []error
	if c.Code == "" {
		errs = append(errs, fmt.Errorf("%s.code is required", prefix))
	}
	if c.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if c.Category != "" && c.Category != key {
		errs = append(errs, fmt.Errorf("%s.category %q does not match key %q", prefix, c.Category, key))
	}
	errs = append(errs, validateCredits(prefix, c.Credits)...)
	return errs
}

// ValidateCompletedSchema checks a completed-semesters list before conversion.
func ValidateCompletedSchema(schema CompletedSchema) []error {
	var errs []error
	seen := make(map[int]bool)

	for i, sem := range schema {
		prefix := fmt.Sprintf("completed[%d]", i)
		if sem.Number <= 0 {
			errs = append(errs, fmt.Errorf("%s.number must be positive", prefix))
		} else if seen[sem.Number] {
			errs = append(errs, fmt.Errorf("%s: duplicate semester %d", prefix, sem.Number))
		}
		seen[sem.Number] = true

		for j, c := range sem.Courses {
			cp := fmt.Sprintf("%s.courses[%d]", prefix, j)
			if c.Code == "" {
				errs = append(errs, fmt.Errorf("%s.code is required", cp))
			}
			if !domain.ValidCategories[c.Category] {
				errs = append(errs, fmt.Errorf("%s.category: invalid value %q", cp, c.Category))
			}
			errs = append(errs, validateCredits(cp, c.Credits)...)
		}
	}
	return errs
}

func validateCredits(prefix string, credits *float64) []error {
	if credits == nil {
		return []error{fmt.Errorf("%s.credits is required", prefix)}
	}
	v := *credits
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return []error{fmt.Errorf("%s.credits must be a non-negative number, got %v", prefix, v)}
	}
	return nil
}
