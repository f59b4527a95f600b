package timeline

import "fateshift/pkg/models"

// SaturnReturn emits the single first-return window every chart gets:
// birth year +28 through +30.
type SaturnReturn struct{}

func (SaturnReturn) Name() string { return "saturn-return" }

func (SaturnReturn) Periods(birth models.BirthDate) []models.CriticalPeriod {
	return []models.CriticalPeriod{{
		Label:     "Saturn Return",
		StartDate: yearStart(birth.Year + 28),
		EndDate:   yearEnd(birth.Year + 30),
		RiskLevel: models.RiskSuperCritical,
		Theme:     "Karmic restructuring",
		Advice:    "Commit to what is real and let go of what is not. Structures that survive this window tend to last.",
		System:    "Western",
	}}
}
