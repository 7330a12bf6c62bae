package domain

// CategoryCredits maps a category to its accumulated credit total.
type CategoryCredits map[Category]float64

// NewCategoryCredits returns a map with a zero entry for every category.
func NewCategoryCredits() CategoryCredits {
	cc := make(CategoryCredits, len(Categories))
	for _, c := range Categories {
		cc[c] = 0
	}
	return cc
}

// CreditRequirements is the required credit total per category.
var CreditRequirements = map[Category]float64{
	CategoryFC:   30,
	CategoryDLES: 9,
	CategoryDC:   63,
	CategoryDE:   24,
	CategoryOE:   12,
	CategoryPI:   15,
	CategoryNGCR: 9,
}

// TotalCreditRequirement is the graduation total.
const TotalCreditRequirement = 162.0

// ElectiveTotalRequirement is the exact combined DE+OE target.
const ElectiveTotalRequirement = 36.0

// ElectiveCategories are the categories summed for the elective total.
var ElectiveCategories = [2]Category{CategoryDE, CategoryOE}

// SemesterLimits configures the per-semester credit ceiling.
type SemesterLimits struct {
	// Base is the ceiling for regular (non-NPTEL, counting) credits.
	Base float64
	// ProjectAllowance is the extra project credits a semester may carry
	// on top of Base.
	ProjectAllowance float64
}

// DefaultSemesterLimits is the ceiling applied to every planned semester.
var DefaultSemesterLimits = SemesterLimits{Base: 27.5, ProjectAllowance: 6}
