package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/app"
)

const (
	statusProgressBarWidth  = 10
	overallProgressBarWidth = 30
)

// FormatStatus formats a StatusResponse into a styled CLI dashboard string.
func FormatStatus(resp *app.StatusResponse) string {
	var b strings.Builder
	p := resp.Progress

	b.WriteString(fmt.Sprintf("%s %s / %s credits\n",
		Bold("Total"), FormatCredits(p.TotalEarned), FormatCredits(p.TotalRequired)))
	b.WriteString(RenderProgress(p.BarPercent()/100, overallProgressBarWidth))
	if p.Percent > 100 {
		b.WriteString(Dim(fmt.Sprintf("  (%.0f%% of requirement)", p.Percent)))
	}
	b.WriteString("\n\n")

	headers := []string{"CATEGORY", "EARNED", "REQUIRED", "PROGRESS", "STATUS"}
	rows := make([][]string, 0, len(p.Categories))
	for _, cp := range p.Categories {
		rows = append(rows, []string{
			CategoryBadge(cp.Category),
			FormatCredits(cp.Earned),
			FormatCredits(cp.Required),
			RenderProgress(cp.Percent/100, statusProgressBarWidth),
			CompletionIndicator(cp.Complete),
		})
	}
	b.WriteString(RenderTableAligned(headers, rows, map[int]bool{1: true, 2: true}))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Electives (DE + OE)"), ElectiveIndicator(p)))

	if !resp.CatalogLoaded {
		b.WriteString("\n" + Dim("Loading course catalog...") + "\n")
	}

	if len(resp.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		b.WriteString(FormatRecommendationList(resp.Recommendations))
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	return RenderBox("Graduation Progress", b.String())
}
