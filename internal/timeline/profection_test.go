package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fateshift/pkg/models"
)

func TestProfectedHouse(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{0, 1},
		{1, 2},
		{11, 12},
		{12, 1}, // cycle wraps
		{29, 6},
		{35, 12},
		{-1, 12}, // negative ages normalize
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProfectedHouse(tt.age), "age %d", tt.age)
	}
}

func TestAnnualProfection(t *testing.T) {
	p := AnnualProfection(testBirth, 2019)

	assert.Equal(t, 29, p.Age)
	assert.Equal(t, 2019, p.Year)
	assert.Equal(t, 6, p.House)
	assert.Contains(t, p.Topics, "health")
}

// A twelve-year run visits every house exactly once.
func TestAnnualProfectionsFullCycle(t *testing.T) {
	items := AnnualProfections(testBirth, 2025)

	require.Len(t, items, 12)
	seen := map[int]int{}
	for i, p := range items {
		assert.Equal(t, 2025+i, p.Year)
		assert.NotEmpty(t, p.Topics)
		seen[p.House]++
	}
	require.Len(t, seen, 12)
	for house, n := range seen {
		assert.Equal(t, 1, n, "house %d", house)
	}
}

func TestProfectionBeforeBirthYear(t *testing.T) {
	p := AnnualProfection(models.BirthDate{Year: 2000, Month: 1, Day: 1}, 1999)
	assert.Equal(t, -1, p.Age)
	assert.Equal(t, 12, p.House)
}
