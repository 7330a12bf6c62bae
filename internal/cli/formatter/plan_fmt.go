package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/domain"
)

// FormatPlan renders every planned semester.
func FormatPlan(semesters []app.SemesterView) string {
	var b strings.Builder
	for i, sv := range semesters {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatSemester(sv))
	}
	return RenderBox("Course Plan", b.String())
}

// FormatSemester renders one semester with its numbered entries. Numbers
// are 1-based, matching `plan remove`.
func FormatSemester(sv app.SemesterView) string {
	var b strings.Builder
	b.WriteString(SemesterSummary(sv) + "\n")

	if len(sv.Courses) == 0 {
		b.WriteString(Dim("  No courses planned") + "\n")
	} else {
		headers := []string{"#", "CODE", "TITLE", "CAT", "CR", ""}
		rows := make([][]string, 0, len(sv.Courses))
		for i, c := range sv.Courses {
			rows = append(rows, []string{
				Dim(fmt.Sprintf("%d", i+1)),
				Bold(c.Code),
				Truncate(c.Title, 40),
				CategoryBadge(c.Category),
				FormatCredits(c.Credits),
				CourseTags(c),
			})
		}
		b.WriteString(RenderTableAligned(headers, rows, map[int]bool{0: true, 4: true}))
		for _, c := range sv.Courses {
			if c.Note != "" {
				b.WriteString(Dim(fmt.Sprintf("  %s: %s", c.Code, c.Note)) + "\n")
			}
		}
	}

	for _, w := range sv.Validation.Warnings {
		b.WriteString(StyleRed.Render("  ⚠ "+w) + "\n")
	}
	return b.String()
}

// SemesterSummary is the one-line heading for a semester: credits against
// the ceiling plus NPTEL and project annotations.
func SemesterSummary(sv app.SemesterView) string {
	v := sv.Validation
	limit := domain.DefaultSemesterLimits.Base

	regular := fmt.Sprintf("%s / %s regular", FormatCredits(v.RegularCredits), FormatCredits(limit))
	if len(v.Warnings) > 0 {
		regular = StyleRed.Render(regular)
	} else {
		regular = StyleGreen.Render(regular)
	}

	parts := []string{
		StyleHeader.Render(fmt.Sprintf("Semester %d", sv.Semester)),
		regular,
		Dim(fmt.Sprintf("%s total", FormatCredits(sv.TotalCredits))),
	}
	if v.HasNPTEL {
		parts = append(parts, StyleBlue.Render("NPTEL"))
	}
	if v.ProjectCredits > 0 {
		parts = append(parts, StylePurple.Render(fmt.Sprintf("project %s (+%s allowance)",
			FormatCredits(v.ProjectCredits), FormatCredits(domain.DefaultSemesterLimits.ProjectAllowance))))
	}
	return strings.Join(parts, "  ")
}
