package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
	"github.com/alexanderramin/gradplan/internal/credits"
	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/charmbracelet/glamour"
)

const reportWordWrap = 90

// ReportMarkdown builds a plain markdown progress report.
func ReportMarkdown(resp *app.StatusResponse) string {
	var b strings.Builder
	p := resp.Progress

	b.WriteString("# Graduation progress\n\n")
	fmt.Fprintf(&b, "**%s / %s credits** (%.1f%%)\n\n",
		FormatCredits(p.TotalEarned), FormatCredits(p.TotalRequired), p.Percent)

	b.WriteString("## Categories\n\n")
	b.WriteString("| Category | Earned | Required | Progress | Status |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, cp := range p.Categories {
		status := "open"
		if cp.Complete {
			status = "done"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %.0f%% | %s |\n",
			cp.Category, FormatCredits(cp.Earned), FormatCredits(cp.Required), cp.Percent, status)
	}

	b.WriteString("\n## Electives\n\n")
	fmt.Fprintf(&b, "DE + OE: **%s** of exactly %s credits (%s).\n",
		FormatCredits(p.ElectiveTotal), FormatCredits(p.ElectiveTarget), p.ElectiveStatus)

	b.WriteString("\n## Planned semesters\n")
	for _, sv := range resp.Semesters {
		fmt.Fprintf(&b, "\n### Semester %d\n\n", sv.Semester)
		fmt.Fprintf(&b, "Regular credits: %s / %s",
			FormatCredits(sv.Validation.RegularCredits), FormatCredits(domain.DefaultSemesterLimits.Base))
		if sv.Validation.HasNPTEL {
			b.WriteString(", includes NPTEL")
		}
		if sv.Validation.ProjectCredits > 0 {
			fmt.Fprintf(&b, ", project %s", FormatCredits(sv.Validation.ProjectCredits))
		}
		b.WriteString("\n\n")
		if len(sv.Courses) == 0 {
			b.WriteString("_No courses planned._\n")
		}
		for _, c := range sv.Courses {
			fmt.Fprintf(&b, "- `%s` %s (%s, %s cr)", c.Code, c.Title, c.Category, FormatCredits(c.Credits))
			if c.Note != "" {
				fmt.Fprintf(&b, " _%s_", c.Note)
			}
			b.WriteString("\n")
		}
		for _, w := range sv.Validation.Warnings {
			fmt.Fprintf(&b, "\n> **Warning:** %s\n", w)
		}
	}

	if len(resp.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, r := range resp.Recommendations {
			label := string(r.Category)
			if r.Category == credits.ElectivesAdvisory {
				label = "Electives"
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", label, r.Message)
		}
	}
	return b.String()
}

// RenderMarkdown renders markdown for the terminal with glamour.
func RenderMarkdown(md string, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(reportWordWrap)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}
