package timeline

import "fateshift/pkg/models"

// The fixed Vimshottari mahadasha sequence: nine lords totaling 120 years.
var dashaSequence = []struct {
	Lord        string
	Years       int
	Explanation string
}{
	{"Ketu", 7, "Detachment and unfinished karma; endings that free you."},
	{"Venus", 20, "Comfort, relationship and accumulation; the long sweet stretch."},
	{"Sun", 6, "Visibility and authority; identity comes into focus."},
	{"Moon", 10, "Emotional life and the public; tides of belonging."},
	{"Mars", 7, "Effort and contest; energy seeks an outlet."},
	{"Rahu", 18, "Ambition and obsession; growth through the unfamiliar."},
	{"Jupiter", 16, "Wisdom and fortune; teachers and expansion."},
	{"Saturn", 19, "Discipline and endurance; slow, lasting results."},
	{"Mercury", 17, "Intellect and trade; communication carries the period."},
}

// DashaTimeline lays the fixed sequence over 120 contiguous years from
// the birth year: each period starts where the previous one ended.
//
// True Vimshottari offsets the starting lord by the natal Moon's
// nakshatra; that offset is not computed here, so every chart starts at
// Ketu.
// Antardashas subdivides a mahadasha into its nine sub-periods. The
// sequence is rotated to start at the mahadasha's own lord, and each
// sub-period lasts (sub-lord years * mahadasha years) / 120, so the nine
// spans exactly fill the parent period. Unknown lords yield nil.
func Antardashas(period models.DashaPeriod) []models.AntardashaPeriod {
	start := -1
	for i, d := range dashaSequence {
		if d.Lord == period.Lord {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	majorYears := float64(period.EndYear - period.StartYear)
	out := make([]models.AntardashaPeriod, 0, len(dashaSequence))
	cursor := float64(period.StartYear)
	for i := 0; i < len(dashaSequence); i++ {
		d := dashaSequence[(start+i)%len(dashaSequence)]
		years := float64(d.Years) * majorYears / 120
		out = append(out, models.AntardashaPeriod{
			Lord:      d.Lord,
			MajorLord: period.Lord,
			StartYear: cursor,
			EndYear:   cursor + years,
			Years:     years,
		})
		cursor += years
	}
	return out
}

func DashaTimeline(birthYear int) []models.DashaPeriod {
	out := make([]models.DashaPeriod, 0, len(dashaSequence))
	start := birthYear
	for _, d := range dashaSequence {
		out = append(out, models.DashaPeriod{
			Lord:        d.Lord,
			StartYear:   start,
			EndYear:     start + d.Years,
			Explanation: d.Explanation,
		})
		start += d.Years
	}
	return out
}
