package credits

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// ElectivesAdvisory is the pseudo-category used when DE+OE overshoots its
// exact target.
const ElectivesAdvisory domain.Category = "ELECTIVES"

// maxSuggestions caps the catalog codes referenced per recommendation.
const maxSuggestions = 3

type Recommendation struct {
	Category    domain.Category
	Message     string
	Remaining   float64
	Suggestions []string
}

// Recommendations returns one entry per category whose total is below its
// requirement, in canonical category order. Categories at or above their
// requirement never appear. A nil catalog yields recommendations without
// suggestions.
func Recommendations(total domain.CategoryCredits, catalog domain.Catalog) []Recommendation {
	var recs []Recommendation
	for _, cat := range domain.Categories {
		required := domain.CreditRequirements[cat]
		earned := total[cat]
		if MeetsRequirement(earned, required) {
			continue
		}
		remaining := required - earned

		var codes []string
		for _, c := range catalog[cat] {
			if len(codes) == maxSuggestions {
				break
			}
			codes = append(codes, c.Code)
		}

		msg := fmt.Sprintf("Need %.1f more credits.", remaining)
		if len(codes) > 0 {
			msg += " Consider " + strings.Join(codes, ", ") + "."
		} else if catalog != nil {
			msg += " No catalog courses are offered in this category."
		}

		recs = append(recs, Recommendation{
			Category:    cat,
			Message:     msg,
			Remaining:   remaining,
			Suggestions: codes,
		})
	}

	if over := ElectiveTotal(total) - domain.ElectiveTotalRequirement; over > creditEpsilon {
		recs = append(recs, Recommendation{
			Category: ElectivesAdvisory,
			Message: fmt.Sprintf("DE + OE is %.1f credits over the exact %.0f credit target.",
				over, domain.ElectiveTotalRequirement),
		})
	}
	return recs
}
