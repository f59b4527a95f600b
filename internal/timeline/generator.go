package timeline

import (
	"sort"
	"time"

	"fateshift/pkg/models"
)

// Source is one independent rule system contributing periods to the life
// timeline. Sources never filter or deduplicate against each other, so
// overlapping periods from different systems are expected output.
type Source interface {
	Name() string
	Periods(birth models.BirthDate) []models.CriticalPeriod
}

// Generator concatenates the output of all sources and returns it sorted
// ascending by start date.
type Generator struct {
	Sources []Source
}

// NewGenerator creates a Generator with the given sources.
func NewGenerator(sources ...Source) *Generator {
	return &Generator{Sources: sources}
}

// Default returns a Generator wired with the three standard rule systems.
func Default() *Generator {
	return NewGenerator(SaturnReturn{}, PersonalYearNine{}, BaZiClash{})
}

// CriticalPeriods produces the merged, chronologically ordered timeline
// for a birth date. The sort is stable so that same-day periods keep
// source order.
func (g *Generator) CriticalPeriods(birth models.BirthDate) []models.CriticalPeriod {
	var out []models.CriticalPeriod
	for _, src := range g.Sources {
		out = append(out, src.Periods(birth)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

// yearStart and yearEnd bound full-calendar-year periods in UTC.
func yearStart(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func yearEnd(y int) time.Time {
	return time.Date(y, time.December, 31, 23, 59, 59, 0, time.UTC)
}
