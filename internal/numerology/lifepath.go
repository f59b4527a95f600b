package numerology

import "fateshift/pkg/models"

// LifePathNumber is the master-preserving reduction of the digit sum of
// the date written as YYYYMMDD. Zero padding does not affect the sum, so
// the components are summed directly.
func LifePathNumber(d models.BirthDate) int {
	return Reduce(digitSum(d.Year) + digitSum(d.Month) + digitSum(d.Day))
}

// PersonalYearNumber reduces month + day + target year to a plain single
// digit. Master numbers are NOT preserved here.
func PersonalYearNumber(month, day, year int) int {
	return ReducePlain(month + day + year)
}
