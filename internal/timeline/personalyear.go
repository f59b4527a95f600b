package timeline

import (
	"fmt"

	"fateshift/internal/numerology"
	"fateshift/pkg/models"
)

// personalYearSpan is how many years from birth the numerology source scans.
const personalYearSpan = 30

// PersonalYearNine emits one full-calendar-year period for each year in
// the scan window whose personal year number reduces to 9.
type PersonalYearNine struct{}

func (PersonalYearNine) Name() string { return "personal-year-9" }

func (PersonalYearNine) Periods(birth models.BirthDate) []models.CriticalPeriod {
	var out []models.CriticalPeriod
	for y := birth.Year; y < birth.Year+personalYearSpan; y++ {
		if numerology.PersonalYearNumber(birth.Month, birth.Day, y) != 9 {
			continue
		}
		out = append(out, models.CriticalPeriod{
			Label:     fmt.Sprintf("Personal Year 9 (%d)", y),
			StartDate: yearStart(y),
			EndDate:   yearEnd(y),
			RiskLevel: models.RiskHigh,
			Theme:     "Completion and release",
			Advice:    "Close cycles rather than start them. What ends now was finished long before.",
			System:    "Numerology",
		})
	}
	return out
}
