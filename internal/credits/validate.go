package credits

import (
	"fmt"

	"github.com/alexanderramin/gradplan/internal/domain"
)

// SemesterValidation is the derived credit picture of one planned semester.
type SemesterValidation struct {
	Semester       int
	RegularCredits float64
	HasNPTEL       bool
	ProjectCredits float64
	Warnings       []string
}

// ValidateSemester checks a semester's courses against the default limits.
func ValidateSemester(courses []domain.Course, semester int) SemesterValidation {
	return ValidateSemesterWithLimits(courses, semester, domain.DefaultSemesterLimits)
}

// ValidateSemesterWithLimits computes regular credits (excluding NPTEL and
// non-counting courses), NPTEL presence and project credits. A warning is
// produced only when regular credits exceed limits.Base.
func ValidateSemesterWithLimits(courses []domain.Course, semester int, limits domain.SemesterLimits) SemesterValidation {
	v := SemesterValidation{Semester: semester}
	for i := range courses {
		c := &courses[i]
		if c.IsNPTEL {
			v.HasNPTEL = true
		}
		if c.IsProject() {
			v.ProjectCredits += c.Credits
		}
		if !c.LimitExempt() {
			v.RegularCredits += c.Credits
		}
	}

	if v.RegularCredits > limits.Base+creditEpsilon {
		v.Warnings = append(v.Warnings, fmt.Sprintf(
			"Semester %d has %.1f regular credits, %.1f over the %.1f credit limit (NPTEL and non-counting courses excluded).",
			semester, v.RegularCredits, v.RegularCredits-limits.Base, limits.Base,
		))
	}
	return v
}

// ValidatePlan validates every semester of plan in order.
func ValidatePlan(plan domain.Plan) []SemesterValidation {
	out := make([]SemesterValidation, 0, len(domain.PlanSemesters))
	for _, s := range domain.PlanSemesters {
		out = append(out, ValidateSemester(plan.Courses(s), s))
	}
	return out
}
