package models

import "time"

// Risk levels for critical periods, from most to least severe.
const (
	RiskSuperCritical = "Super Critical"
	RiskHigh          = "High"
	RiskElevated      = "Elevated"
	RiskModerate      = "Moderate"
)

// CriticalPeriod is one labeled interval on the life timeline. Values are
// immutable once produced; generators emit start/end at calendar-year
// boundaries in UTC.
type CriticalPeriod struct {
	Label     string    `json:"label"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	RiskLevel string    `json:"risk_level"`
	Theme     string    `json:"theme"`
	Advice    string    `json:"advice"`
	System    string    `json:"system"` // provenance: "Western", "Numerology", "BaZi"
}

// PlanetaryReturnEvent marks one return of a slow-moving planet to its
// natal position, dated by mean orbital period.
type PlanetaryReturnEvent struct {
	Planet       string    `json:"planet"`
	ReturnNumber int       `json:"return_number"` // 1..10
	Date         time.Time `json:"date"`
	AgeAtReturn  float64   `json:"age_at_return"`
	Theme        string    `json:"theme"`
	Description  string    `json:"description"`
	Intensity    string    `json:"intensity"` // Peak, High, Medium, Low
	Color        string    `json:"color"`
}

// DashaPeriod is one mahadasha in the 120-year Vimshottari cycle.
// Periods are contiguous: each StartYear equals the previous EndYear.
type DashaPeriod struct {
	Lord        string `json:"lord"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
	Explanation string `json:"explanation"`
}

// AntardashaPeriod is one sub-period inside a mahadasha. Spans are
// fractional years: each sub-lord gets its proportional share of the
// parent period, and the nine shares fill it exactly.
type AntardashaPeriod struct {
	Lord      string  `json:"lord"`
	MajorLord string  `json:"major_lord"`
	StartYear float64 `json:"start_year"`
	EndYear   float64 `json:"end_year"`
	Years     float64 `json:"years"`
}

// AnnualProfection is the profection active during one calendar year:
// the 1st house at age 0, advancing one house per year around twelve.
type AnnualProfection struct {
	Age    int      `json:"age"`
	Year   int      `json:"year"`
	House  int      `json:"house"` // 1..12
	Topics []string `json:"topics"`
}

// PinnacleOrChallenge is one of the four numerology life stages. The age
// windows are fixed constants, not derived from the birth date.
type PinnacleOrChallenge struct {
	Value       int    `json:"value"`
	AgeFrom     int    `json:"age_from"`
	AgeTo       int    `json:"age_to"`
	Explanation string `json:"explanation"`
}
