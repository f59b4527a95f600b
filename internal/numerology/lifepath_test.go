package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/models"
)

func TestLifePathNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"1985-03-15", 5}, // 1+9+8+5+3+1+5 = 32 -> 5
		{"1992-02-29", 7}, // 1+9+9+2+2+2+9 = 34 -> 7
		{"2000-06-15", 5}, // 2+6+1+5 = 14 -> 5
	}

	for _, tt := range tests {
		birth, err := models.ParseBirthDate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, LifePathNumber(birth), tt.date)
	}
}

func TestLifePathPreservesMasters(t *testing.T) {
	birth := models.BirthDate{Year: 2000, Month: 4, Day: 5} // digit sum 11
	assert.Equal(t, 11, LifePathNumber(birth))
}

func TestPersonalYearNumber(t *testing.T) {
	tests := []struct {
		month, day, year int
		want             int
	}{
		{6, 15, 2025, 3}, // 2046 -> 12 -> 3
		{1, 1, 1997, 1},  // 1999 -> 28 -> 10 -> 1
		{3, 15, 1998, 9}, // 2016 -> 9
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PersonalYearNumber(tt.month, tt.day, tt.year),
			"%d-%d in %d", tt.month, tt.day, tt.year)
	}
}

// Personal Year numbers never stop at masters: a sum of 11 keeps reducing.
func TestPersonalYearPlainReduction(t *testing.T) {
	assert.Equal(t, 2, PersonalYearNumber(5, 3, 3)) // 5+3+3 = 11 -> 2
}
