package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReducePreservesMasterNumbers(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"single digit unchanged", 7, 7},
		{"zero unchanged", 0, 0},
		{"plain reduction", 10, 1},
		{"reduction through two steps", 199, 1}, // 1+9+9=19 -> 1+9=10 -> 1
		{"master 11 kept", 11, 11},
		{"master 22 kept", 22, 22},
		{"master 33 kept", 33, 33},
		{"stops when a step hits 11", 29, 11}, // 2+9=11, not reduced further
		{"no master on the way down", 49, 4}, // 4+9=13 -> 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.in))
		})
	}
}

func TestReducePlainNeverStopsAtMasters(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{11, 2},
		{22, 4},
		{33, 6},
		{29, 2}, // 29 -> 11 -> 2
		{2046, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReducePlain(tt.in), "input %d", tt.in)
	}
}

// ReducePlain output is always a single digit; Reduce output is a single
// digit or one of the three masters.
func TestReduceRanges(t *testing.T) {
	for n := 0; n < 5000; n++ {
		p := ReducePlain(n)
		assert.LessOrEqual(t, p, 9, "ReducePlain(%d)", n)

		m := Reduce(n)
		if m > 9 {
			assert.Contains(t, []int{11, 22, 33}, m, "Reduce(%d)", n)
		}
	}
}
