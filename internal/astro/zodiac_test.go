package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/models"
)

func date(m, d int) models.BirthDate {
	return models.BirthDate{Year: 1990, Month: m, Day: d}
}

// TestSunSignBoundaries walks the edges of every range: the first and
// last day of each sign must land inside it, and the day after the last
// must land in the next sign.
func TestSunSignBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		month int
		day   int
		want  string
	}{
		{"Aries start", 3, 21, "Aries"},
		{"Aries end", 4, 19, "Aries"},
		{"Taurus start", 4, 20, "Taurus"},
		{"Gemini mid", 6, 15, "Gemini"},
		{"Cancer start", 6, 21, "Cancer"},
		{"Leo end", 8, 22, "Leo"},
		{"Virgo start", 8, 23, "Virgo"},
		{"Libra end", 10, 22, "Libra"},
		{"Scorpio end", 11, 21, "Scorpio"},
		{"Sagittarius end", 12, 21, "Sagittarius"},
		{"Capricorn start (wraps)", 12, 22, "Capricorn"},
		{"Capricorn new year side", 1, 1, "Capricorn"},
		{"Capricorn end", 1, 19, "Capricorn"},
		{"Aquarius start", 1, 20, "Aquarius"},
		{"Aquarius end", 2, 18, "Aquarius"},
		{"Pisces start", 2, 19, "Pisces"},
		{"Pisces end", 3, 20, "Pisces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SunSign(date(tt.month, tt.day)))
		})
	}
}

// TestSunSignFullCoverage classifies every day of a leap year and checks
// that all twelve signs appear and nothing else does.
func TestSunSignFullCoverage(t *testing.T) {
	seen := map[string]int{}
	for m := 1; m <= 12; m++ {
		for d := 1; d <= daysIn(m); d++ {
			seen[SunSign(models.BirthDate{Year: 2000, Month: m, Day: d})]++
		}
	}

	require.Len(t, seen, 12)
	for _, sign := range SignNames() {
		assert.Greater(t, seen[sign], 0, sign)
	}
}

func daysIn(m int) int {
	switch m {
	case 2:
		return 29
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

func TestSignNamesOrder(t *testing.T) {
	names := SignNames()
	require.Len(t, names, 12)
	assert.Equal(t, "Aries", names[0])
	assert.Equal(t, "Pisces", names[11])
}
