package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/models"
)

func TestDashaTimeline(t *testing.T) {
	periods := DashaTimeline(1990)

	require.Len(t, periods, 9)
	assert.Equal(t, "Ketu", periods[0].Lord)
	assert.Equal(t, 1990, periods[0].StartYear)
	assert.Equal(t, 1997, periods[0].EndYear)
	assert.Equal(t, "Mercury", periods[8].Lord)
	assert.Equal(t, 2110, periods[8].EndYear)
}

// The nine periods are contiguous and cover exactly 120 years.
func TestDashaContiguity(t *testing.T) {
	periods := DashaTimeline(2000)

	total := 0
	for i, p := range periods {
		assert.Greater(t, p.EndYear, p.StartYear, p.Lord)
		assert.NotEmpty(t, p.Explanation, p.Lord)
		if i > 0 {
			assert.Equal(t, periods[i-1].EndYear, p.StartYear,
				"gap before %s", p.Lord)
		}
		total += p.EndYear - p.StartYear
	}
	assert.Equal(t, 120, total)
	assert.Equal(t, 2120, periods[8].EndYear)
}

func TestAntardashasProportionalShares(t *testing.T) {
	// Ketu mahadasha 1990..1997 (7 years): each sub-lord gets
	// (own years * 7) / 120 of it, starting from Ketu itself.
	periods := DashaTimeline(1990)
	subs := Antardashas(periods[0])

	require.Len(t, subs, 9)
	assert.Equal(t, "Ketu", subs[0].Lord)
	assert.Equal(t, "Ketu", subs[0].MajorLord)
	assert.InDelta(t, 1990.0, subs[0].StartYear, 1e-9)
	assert.InDelta(t, 7.0*7.0/120.0, subs[0].Years, 1e-9)
	assert.Equal(t, "Venus", subs[1].Lord)
	assert.InDelta(t, 20.0*7.0/120.0, subs[1].Years, 1e-9)
	assert.InDelta(t, 1997.0, subs[8].EndYear, 1e-9)
}

// The nine sub-periods are contiguous and fill the mahadasha exactly.
func TestAntardashasContiguity(t *testing.T) {
	for _, p := range DashaTimeline(2000) {
		subs := Antardashas(p)
		require.Len(t, subs, 9, p.Lord)

		assert.InDelta(t, float64(p.StartYear), subs[0].StartYear, 1e-9)
		assert.InDelta(t, float64(p.EndYear), subs[8].EndYear, 1e-9)
		total := 0.0
		for i, sub := range subs {
			if i > 0 {
				assert.Equal(t, subs[i-1].EndYear, sub.StartYear,
					"gap inside %s before %s", p.Lord, sub.Lord)
			}
			total += sub.Years
		}
		assert.InDelta(t, float64(p.EndYear-p.StartYear), total, 1e-9)
	}
}

// The sub-sequence rotates: a Sun mahadasha starts its antardashas at
// Sun and wraps around to Venus.
func TestAntardashasRotation(t *testing.T) {
	periods := DashaTimeline(1990)
	require.Equal(t, "Sun", periods[2].Lord)

	subs := Antardashas(periods[2])
	require.Len(t, subs, 9)
	assert.Equal(t, "Sun", subs[0].Lord)
	assert.Equal(t, "Moon", subs[1].Lord)
	assert.Equal(t, "Ketu", subs[7].Lord)
	assert.Equal(t, "Venus", subs[8].Lord)
}

func TestAntardashasUnknownLord(t *testing.T) {
	assert.Nil(t, Antardashas(models.DashaPeriod{Lord: "Pluto", StartYear: 2000, EndYear: 2010}))
}

func TestDashaLordOrder(t *testing.T) {
	want := []string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}
	periods := DashaTimeline(1975)
	for i, p := range periods {
		assert.Equal(t, want[i], p.Lord)
	}
}
