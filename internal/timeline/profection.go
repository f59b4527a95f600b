package timeline

import "fateshift/pkg/models"

// Traditional house significations, houses 1 through 12.
var houseTopics = [12][]string{
	{"self", "body", "appearance", "vitality"},
	{"money", "possessions", "resources", "values"},
	{"communication", "siblings", "short trips", "learning"},
	{"home", "family", "roots", "foundation"},
	{"creativity", "children", "pleasure", "romance"},
	{"health", "work", "service", "routine"},
	{"partnerships", "marriage", "others", "contracts"},
	{"transformation", "shared resources", "crisis", "death"},
	{"philosophy", "travel", "higher learning", "beliefs"},
	{"career", "reputation", "status", "authority"},
	{"friends", "groups", "hopes", "wishes"},
	{"isolation", "spirituality", "hidden things", "endings"},
}

// ProfectedHouse maps an age to the annually activated house: the 1st
// house at age 0, one house further each year, wrapping every twelve.
func ProfectedHouse(age int) int {
	h := age % 12
	if h < 0 {
		h += 12
	}
	return h + 1
}

// AnnualProfection computes the profection for a calendar year, with age
// counted in whole years from the birth year. The profected sign and
// time lord depend on the natal chart and stay with the ephemeris
// collaborator; only the house arithmetic lives here.
func AnnualProfection(birth models.BirthDate, year int) models.AnnualProfection {
	age := year - birth.Year
	house := ProfectedHouse(age)
	return models.AnnualProfection{
		Age:    age,
		Year:   year,
		House:  house,
		Topics: houseTopics[house-1],
	}
}

// AnnualProfections lists one profection per year for a full twelve-year
// cycle starting at fromYear.
func AnnualProfections(birth models.BirthDate, fromYear int) []models.AnnualProfection {
	out := make([]models.AnnualProfection, 0, 12)
	for y := fromYear; y < fromYear+12; y++ {
		out = append(out, AnnualProfection(birth, y))
	}
	return out
}
