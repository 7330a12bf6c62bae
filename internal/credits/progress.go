package credits

import (
	"math"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// creditEpsilon absorbs floating-point drift when comparing credit sums.
const creditEpsilon = 1e-9

// ElectiveStatus describes the DE+OE total relative to its exact target.
type ElectiveStatus string

const (
	ElectiveUnder ElectiveStatus = "under"
	ElectiveExact ElectiveStatus = "exact"
	ElectiveOver  ElectiveStatus = "over"
)

type CategoryProgress struct {
	Category domain.Category
	Earned   float64
	Required float64
	// Percent is Earned/Required*100, uncapped; 0 when Required is 0.
	Percent  float64
	Complete bool
}

type Progress struct {
	Categories     []CategoryProgress
	TotalEarned    float64
	TotalRequired  float64
	Percent        float64
	ElectiveTotal  float64
	ElectiveTarget float64
	ElectiveStatus ElectiveStatus
}

// BarPercent returns Percent clamped to [0, 100].
func (p Progress) BarPercent() float64 {
	return math.Min(math.Max(p.Percent, 0), 100)
}

// MeetsRequirement reports whether earned satisfies required, tolerating
// floating-point drift.
func MeetsRequirement(earned, required float64) bool {
	return earned+creditEpsilon >= required
}

// BuildProgress derives the full progress picture from category totals.
func BuildProgress(total domain.CategoryCredits) Progress {
	p := Progress{
		TotalEarned:    TotalEarned(total),
		TotalRequired:  domain.TotalCreditRequirement,
		ElectiveTotal:  ElectiveTotal(total),
		ElectiveTarget: domain.ElectiveTotalRequirement,
	}
	if p.TotalRequired > 0 {
		p.Percent = p.TotalEarned / p.TotalRequired * 100
	}

	for _, cat := range domain.Categories {
		required := domain.CreditRequirements[cat]
		earned := total[cat]
		cp := CategoryProgress{
			Category: cat,
			Earned:   earned,
			Required: required,
			Complete: MeetsRequirement(earned, required),
		}
		if required > 0 {
			cp.Percent = earned / required * 100
		}
		p.Categories = append(p.Categories, cp)
	}

	switch diff := p.ElectiveTotal - p.ElectiveTarget; {
	case math.Abs(diff) <= creditEpsilon:
		p.ElectiveStatus = ElectiveExact
	case diff > 0:
		p.ElectiveStatus = ElectiveOver
	default:
		p.ElectiveStatus = ElectiveUnder
	}
	return p
}
