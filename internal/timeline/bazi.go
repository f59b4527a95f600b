package timeline

import (
	"fmt"

	"fateshift/pkg/models"
)

// BaZi clash scan window, in years after birth.
const (
	baziFirstOffset = 16
	baziLastOffset  = 59
)

// BaZiClash emits a full-calendar-year period for every year in the scan
// window whose parity differs from the birth year. A coarse calendar-year
// simplification of the four-pillar clash rules, kept as-is: roughly half
// of the window qualifies.
type BaZiClash struct{}

func (BaZiClash) Name() string { return "bazi-clash" }

func (BaZiClash) Periods(birth models.BirthDate) []models.CriticalPeriod {
	var out []models.CriticalPeriod
	for y := birth.Year + baziFirstOffset; y <= birth.Year+baziLastOffset; y++ {
		if (y-birth.Year)%2 == 0 {
			continue
		}
		out = append(out, models.CriticalPeriod{
			Label:     fmt.Sprintf("BaZi Clash Year (%d)", y),
			StartDate: yearStart(y),
			EndDate:   yearEnd(y),
			RiskLevel: models.RiskElevated,
			Theme:     "Pillar friction",
			Advice:    "Avoid forcing big moves; friction years reward patience over initiative.",
			System:    "BaZi",
		})
	}
	return out
}
