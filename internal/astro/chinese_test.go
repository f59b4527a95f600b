package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChineseZodiac(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1900, "Rat"},
		{1901, "Ox"},
		{1899, "Pig"},
		{2020, "Rat"},
		{2024, "Dragon"},
		{1990, "Horse"},
		{2000, "Dragon"},
		{1800, "Monkey"}, // years before the reference must normalize
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ChineseZodiac(tt.year), "year %d", tt.year)
	}
}

// The mapping repeats every twelve years in both directions.
func TestChineseZodiacCycle(t *testing.T) {
	for y := 1850; y < 2050; y++ {
		assert.Equal(t, ChineseZodiac(y), ChineseZodiac(y+12), "year %d", y)
	}
}

func TestAnimalNames(t *testing.T) {
	names := AnimalNames()
	require.Len(t, names, 12)
	assert.Equal(t, "Rat", names[0])
	assert.Equal(t, "Pig", names[11])
}
