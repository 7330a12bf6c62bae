package credits

import (
	"testing"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		domain.CategoryFC: {
			{Code: "BMAT101L", Title: "Calculus", Category: domain.CategoryFC, Credits: 3},
			{Code: "BPHY101L", Title: "Engineering Physics", Category: domain.CategoryFC, Credits: 3},
		},
		domain.CategoryDE: {
			{Code: "BCSE401L", Title: "Internet of Things", Category: domain.CategoryDE, Credits: 3},
			{Code: "BCSE402L", Title: "Straße Networks", Category: domain.CategoryDE, Credits: 3},
		},
		domain.CategoryOE: {
			{Code: "BEXC100N", Title: "Extracurricular", Category: domain.CategoryOE, Credits: 2},
		},
	}
}

func codes(courses []domain.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Code)
	}
	return out
}

func TestFilterCatalog(t *testing.T) {
	cat := sampleCatalog()
	tests := []struct {
		name     string
		category domain.Category
		query    string
		planned  []domain.Course
		want     []string
	}{
		{"all categories", domain.CategoryAll, "", nil,
			[]string{"BMAT101L", "BPHY101L", "BCSE401L", "BCSE402L", "BEXC100N"}},
		{"single category", domain.CategoryDE, "", nil, []string{"BCSE401L", "BCSE402L"}},
		{"unknown category is empty", domain.CategoryNGCR, "", nil, []string{}},
		{"query matches code case-insensitively", domain.CategoryAll, "bcse4", nil, []string{"BCSE401L", "BCSE402L"}},
		{"query matches title", domain.CategoryAll, "PHYSICS", nil, []string{"BPHY101L"}},
		{"query uses case folding", domain.CategoryAll, "STRASSE", nil, []string{"BCSE402L"}},
		{"planned codes excluded", domain.CategoryAll, "", []domain.Course{{Code: "BMAT101L"}, {Code: "BEXC100N"}},
			[]string{"BPHY101L", "BCSE401L", "BCSE402L"}},
		{"no match", domain.CategoryFC, "zzz", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCatalog(cat, tt.category, tt.query, tt.planned)
			assert.Equal(t, tt.want, codes(got))
		})
	}
}

func TestFilterCatalog_NilCatalog(t *testing.T) {
	assert.Nil(t, FilterCatalog(nil, domain.CategoryAll, "x", nil))
}
