package credits

import (
	"testing"

	"github.com/alexanderramin/gradplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProgress_Totals(t *testing.T) {
	total := domain.NewCategoryCredits()
	total[domain.CategoryFC] = 30
	total[domain.CategoryDC] = 51

	p := BuildProgress(total)
	assert.InDelta(t, 81.0, p.TotalEarned, 1e-9)
	assert.Equal(t, domain.TotalCreditRequirement, p.TotalRequired)
	assert.InDelta(t, 50.0, p.Percent, 1e-9)
	require.Len(t, p.Categories, len(domain.Categories))

	fc := p.Categories[0]
	assert.Equal(t, domain.CategoryFC, fc.Category)
	assert.True(t, fc.Complete)
	assert.InDelta(t, 100.0, fc.Percent, 1e-9)

	dc := p.Categories[2]
	assert.Equal(t, domain.CategoryDC, dc.Category)
	assert.False(t, dc.Complete)
}

func TestBuildProgress_BarPercentCaps(t *testing.T) {
	total := domain.NewCategoryCredits()
	total[domain.CategoryDC] = 200

	p := BuildProgress(total)
	assert.Greater(t, p.Percent, 100.0)
	assert.Equal(t, 100.0, p.BarPercent())
}

func TestBuildProgress_ElectiveStatus(t *testing.T) {
	cases := []struct {
		name string
		de   float64
		oe   float64
		want ElectiveStatus
	}{
		{"under", 20, 10, ElectiveUnder},
		{"exact", 24, 12, ElectiveExact},
		{"exact with drift", 23.9 + 0.1, 12, ElectiveExact},
		{"over", 30, 12, ElectiveOver},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := domain.NewCategoryCredits()
			total[domain.CategoryDE] = tc.de
			total[domain.CategoryOE] = tc.oe
			assert.Equal(t, tc.want, BuildProgress(total).ElectiveStatus)
		})
	}
}

func TestMeetsRequirement_ToleratesDrift(t *testing.T) {
	sum := 0.1 + 0.2 // 0.30000000000000004
	assert.True(t, MeetsRequirement(sum, 0.3))
	assert.True(t, MeetsRequirement(0.3-1e-12, 0.3))
	assert.False(t, MeetsRequirement(0.29, 0.3))
}
