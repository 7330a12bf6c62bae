package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// FormatCatalog renders catalog search results.
func FormatCatalog(courses []domain.Course, loaded bool) string {
	if !loaded {
		return RenderBox("Catalog", Dim("Loading course catalog..."))
	}
	if len(courses) == 0 {
		return RenderBox("Catalog", Dim("No courses match."))
	}

	headers := []string{"CODE", "TITLE", "CAT", "CR", "TYPE", ""}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Bold(c.Code),
			Truncate(c.Title, 44),
			CategoryBadge(c.Category),
			FormatCredits(c.Credits),
			Dim(c.Type),
			CourseTags(c),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, map[int]bool{3: true}))
	b.WriteString("\n" + Dim(fmt.Sprintf("%d course(s)", len(courses))))
	return RenderBox("Catalog", b.String())
}
