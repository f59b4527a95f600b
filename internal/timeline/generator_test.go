package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/models"
)

var testBirth = models.BirthDate{Year: 1990, Month: 3, Day: 15}

func TestSaturnReturnWindow(t *testing.T) {
	periods := SaturnReturn{}.Periods(testBirth)

	require.Len(t, periods, 1)
	p := periods[0]
	assert.Equal(t, "Saturn Return", p.Label)
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC), p.EndDate)
	assert.Equal(t, models.RiskSuperCritical, p.RiskLevel)
	assert.Equal(t, "Western", p.System)
}

func TestPersonalYearNinePeriods(t *testing.T) {
	// month+day = 18, so the personal year hits 9 when the target year is
	// divisible by 9: 1998, 2007 and 2016 inside the 30-year scan.
	periods := PersonalYearNine{}.Periods(testBirth)

	require.Len(t, periods, 3)
	assert.Equal(t, "Personal Year 9 (1998)", periods[0].Label)
	assert.Equal(t, "Personal Year 9 (2007)", periods[1].Label)
	assert.Equal(t, "Personal Year 9 (2016)", periods[2].Label)
	for _, p := range periods {
		assert.Equal(t, models.RiskHigh, p.RiskLevel)
		assert.Equal(t, "Numerology", p.System)
	}
}

func TestBaZiClashWindow(t *testing.T) {
	periods := BaZiClash{}.Periods(testBirth)

	// Odd offsets 17..59 inside the 16..59 window.
	require.Len(t, periods, 22)
	assert.Equal(t, 2007, periods[0].StartDate.Year())
	assert.Equal(t, 2049, periods[len(periods)-1].StartDate.Year())
	for i, p := range periods {
		assert.Equal(t, models.RiskElevated, p.RiskLevel)
		assert.Equal(t, "BaZi", p.System)
		assert.Equal(t, 1, (p.StartDate.Year()-testBirth.Year)%2, "period %d", i)
	}
}

func TestGeneratorMergesAndSorts(t *testing.T) {
	gen := Default()
	periods := gen.CriticalPeriods(testBirth)

	// 1 Saturn + 3 Personal Year 9 + 22 BaZi, no deduplication.
	require.Len(t, periods, 26)
	for i := 1; i < len(periods); i++ {
		assert.False(t, periods[i].StartDate.Before(periods[i-1].StartDate),
			"periods out of order at %d: %s before %s", i, periods[i].Label, periods[i-1].Label)
	}
}

// Systems may legitimately emit overlapping periods; the merge never
// filters them out.
func TestGeneratorKeepsOverlaps(t *testing.T) {
	// Birth 1990-03-15: BaZi hits 2019 (offset 29, odd) while the Saturn
	// window spans 2018-2020.
	periods := Default().CriticalPeriods(testBirth)

	var saturn, bazi2019 bool
	for _, p := range periods {
		if p.Label == "Saturn Return" {
			saturn = true
		}
		if p.Label == "BaZi Clash Year (2019)" {
			bazi2019 = true
		}
	}
	assert.True(t, saturn)
	assert.True(t, bazi2019)
}

func TestGeneratorIdempotent(t *testing.T) {
	gen := Default()
	assert.Equal(t, gen.CriticalPeriods(testBirth), gen.CriticalPeriods(testBirth))
}
