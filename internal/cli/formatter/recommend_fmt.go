package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/credits"
)

// FormatRecommendationList renders recommendations as an indented list.
func FormatRecommendationList(recs []credits.Recommendation) string {
	var b strings.Builder
	for _, r := range recs {
		label := CategoryBadge(r.Category)
		if r.Category == credits.ElectivesAdvisory {
			label = StyleRed.Render(string(r.Category))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", label, r.Message))
	}
	return b.String()
}

// FormatRecommendations renders the full recommendation screen.
func FormatRecommendations(recs []credits.Recommendation) string {
	if len(recs) == 0 {
		return RenderBox("Recommendations", StyleGreen.Render("Every category requirement is met."))
	}
	return RenderBox("Recommendations", FormatRecommendationList(recs))
}
