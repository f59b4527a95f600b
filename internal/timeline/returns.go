package timeline

import (
	"fmt"
	"math/rand"
	"sort"

	"fateshift/pkg/models"
)

// planetCycle is one tracked body: mean orbital period in years, display
// color, and the themes a return can carry.
type planetCycle struct {
	Name   string
	Years  float64
	Color  string
	Themes []string
}

var planetCycles = []planetCycle{
	{"Mars", 2.14, "#c1440e", []string{"Drive", "Assertion", "Conflict resolution", "New initiative"}},
	{"Jupiter", 11.86, "#d8a03d", []string{"Expansion", "Luck", "Learning", "Travel"}},
	{"Saturn", 29.46, "#8a7f6d", []string{"Responsibility", "Mastery", "Restructuring"}},
	{"Uranus", 84.02, "#6fc0c7", []string{"Liberation", "Disruption", "Reinvention"}},
	{"Neptune", 164.8, "#4a6fae", []string{"Dissolution", "Spiritual opening", "Imagination"}},
}

const (
	maxReturnNumber    = 10
	returnHorizonYears = 50
	daysPerYear        = 365.25
)

// ThemePicker selects the theme for one return event.
type ThemePicker func(planet string, returnNumber int, themes []string) string

// IndexedThemePicker is the deterministic default: the theme cycles with
// the return number, so identical inputs always yield identical output.
func IndexedThemePicker(planet string, returnNumber int, themes []string) string {
	return themes[(returnNumber-1)%len(themes)]
}

// RandomThemePicker reproduces the legacy randomized selection. Callers
// using it must not assume referential stability across calls; tests
// should check set membership, not exact values.
func RandomThemePicker(rng *rand.Rand) ThemePicker {
	return func(planet string, returnNumber int, themes []string) string {
		return themes[rng.Intn(len(themes))]
	}
}

// PlanetaryReturns computes returns 1..10 for each tracked planet, dated
// by mean orbital period from the birth date, limited to currentYear+50.
// A nil pick falls back to IndexedThemePicker. Output is sorted by date.
func PlanetaryReturns(birth models.BirthDate, currentYear int, pick ThemePicker) []models.PlanetaryReturnEvent {
	if pick == nil {
		pick = IndexedThemePicker
	}

	var out []models.PlanetaryReturnEvent
	for _, p := range planetCycles {
		for n := 1; n <= maxReturnNumber; n++ {
			age := p.Years * float64(n)
			if float64(birth.Year)+age > float64(currentYear+returnHorizonYears) {
				break
			}
			out = append(out, models.PlanetaryReturnEvent{
				Planet:       p.Name,
				ReturnNumber: n,
				Date:         birth.Time().AddDate(0, 0, int(age*daysPerYear)),
				AgeAtReturn:  age,
				Theme:        pick(p.Name, n, p.Themes),
				Description:  fmt.Sprintf("%s return #%d, around age %.1f", p.Name, n, age),
				Intensity:    returnIntensity(n),
				Color:        p.Color,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func returnIntensity(n int) string {
	switch {
	case n == 1:
		return "Peak"
	case n == 2:
		return "High"
	case n <= 4:
		return "Medium"
	default:
		return "Low"
	}
}

// PlanetThemes exposes the fixed theme list for a planet, mainly so tests
// and the content layer can validate against it. Returns nil for unknown
// planets.
func PlanetThemes(planet string) []string {
	for _, p := range planetCycles {
		if p.Name == planet {
			return p.Themes
		}
	}
	return nil
}
