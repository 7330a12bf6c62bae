package credits

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func regular(code string, credits float64) domain.Course {
	return domain.Course{Code: code, Category: domain.CategoryDC, Credits: credits, Type: "Theory", CountsTowardLimit: true}
}

func TestValidateSemester_Empty(t *testing.T) {
	v := ValidateSemester(nil, 6)
	assert.Equal(t, 6, v.Semester)
	assert.Zero(t, v.RegularCredits)
	assert.False(t, v.HasNPTEL)
	assert.Empty(t, v.Warnings)
}

func TestValidateSemester_ExcludesNPTELAndNonCounting(t *testing.T) {
	courses := []domain.Course{
		regular("A", 4),
		{Code: "N", Category: domain.CategoryOE, Credits: 3, IsNPTEL: true, CountsTowardLimit: true},
		{Code: "X", Category: domain.CategoryNGCR, Credits: 2, CountsTowardLimit: false},
		{Code: "P", Category: domain.CategoryPI, Credits: 6, Type: domain.ProjectCourseType},
	}
	v := ValidateSemester(courses, 7)
	assert.InDelta(t, 4.0, v.RegularCredits, 1e-9)
	assert.True(t, v.HasNPTEL)
	assert.InDelta(t, 6.0, v.ProjectCredits, 1e-9)
	assert.Empty(t, v.Warnings)
}

func TestValidateSemester_AtCeilingNoWarning(t *testing.T) {
	courses := []domain.Course{regular("A", 20), regular("B", 7.5)}
	v := ValidateSemester(courses, 6)
	assert.InDelta(t, domain.DefaultSemesterLimits.Base, v.RegularCredits, 1e-9)
	assert.Empty(t, v.Warnings)
}

func TestValidateSemester_OverCeilingWarns(t *testing.T) {
	courses := []domain.Course{regular("A", 20), regular("B", 8)}
	v := ValidateSemester(courses, 8)
	assert.Len(t, v.Warnings, 1)
	assert.Contains(t, v.Warnings[0], "Semester 8")
	assert.Contains(t, v.Warnings[0], "27.5")
}

// TestValidateSemester_WarningIffOverCeiling property-tests the ceiling
// rule over random semesters.
func TestValidateSemester_WarningIffOverCeiling(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	limit := domain.DefaultSemesterLimits.Base

	for trial := 0; trial < 300; trial++ {
		var courses []domain.Course
		var counted float64
		for i := 0; i < rng.Intn(10); i++ {
			c := domain.Course{
				Code:              "C",
				Category:          domain.Categories[rng.Intn(len(domain.Categories))],
				Credits:           float64(rng.Intn(11)) / 2,
				IsNPTEL:           rng.Intn(5) == 0,
				CountsTowardLimit: rng.Intn(6) != 0,
			}
			if !c.IsNPTEL && c.CountsTowardLimit {
				counted += c.Credits
			}
			courses = append(courses, c)
		}

		v := ValidateSemester(courses, 7)
		assert.InDelta(t, counted, v.RegularCredits, 1e-9, "trial %d", trial)
		if counted > limit {
			assert.NotEmpty(t, v.Warnings, "trial %d: %.1f > %.1f must warn", trial, counted, limit)
		} else {
			assert.Empty(t, v.Warnings, "trial %d: %.1f <= %.1f must not warn", trial, counted, limit)
		}
	}
}

func TestValidatePlan_CoversEverySemester(t *testing.T) {
	plan := domain.NewPlan()
	_ = plan.Append(7, regular("A", 30))

	vs := ValidatePlan(plan)
	assert.Len(t, vs, len(domain.PlanSemesters))
	assert.Empty(t, vs[0].Warnings)
	assert.NotEmpty(t, vs[1].Warnings)
	assert.Equal(t, 7, vs[1].Semester)
}

func TestValidateSemesterWithLimits_CustomBase(t *testing.T) {
	v := ValidateSemesterWithLimits([]domain.Course{regular("A", 12)}, 6, domain.SemesterLimits{Base: 10})
	assert.NotEmpty(t, v.Warnings)
}
