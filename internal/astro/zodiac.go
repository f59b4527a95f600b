package astro

import "fateshift/pkg/models"

// ZodiacRule maps a sign name to an inclusive month-day range. The twelve
// rules cover every calendar day exactly once; Capricorn is the single
// rule that wraps the year boundary.
type ZodiacRule struct {
	Sign      string
	FromMonth int
	FromDay   int
	ToMonth   int
	ToDay     int
}

var zodiacRules = []ZodiacRule{
	{"Aries", 3, 21, 4, 19},
	{"Taurus", 4, 20, 5, 20},
	{"Gemini", 5, 21, 6, 20},
	{"Cancer", 6, 21, 7, 22},
	{"Leo", 7, 23, 8, 22},
	{"Virgo", 8, 23, 9, 22},
	{"Libra", 9, 23, 10, 22},
	{"Scorpio", 10, 23, 11, 21},
	{"Sagittarius", 11, 22, 12, 21},
	{"Capricorn", 12, 22, 1, 19},
	{"Aquarius", 1, 20, 2, 18},
	{"Pisces", 2, 19, 3, 20},
}

// fallbackSign should be unreachable given full table coverage; hitting it
// signals a table bug, not bad user input.
const fallbackSign = "Pisces"

// SunSign classifies a calendar date into one of the twelve fixed sign
// names. Range boundaries are inclusive on both ends.
func SunSign(d models.BirthDate) string {
	for _, r := range zodiacRules {
		if r.wraps() {
			if !mdBefore(d.Month, d.Day, r.FromMonth, r.FromDay) || !mdBefore(r.ToMonth, r.ToDay, d.Month, d.Day) {
				return r.Sign
			}
			continue
		}
		if !mdBefore(d.Month, d.Day, r.FromMonth, r.FromDay) && !mdBefore(r.ToMonth, r.ToDay, d.Month, d.Day) {
			return r.Sign
		}
	}
	return fallbackSign
}

// wraps reports whether the rule's range crosses the year boundary.
func (r ZodiacRule) wraps() bool {
	return mdBefore(r.ToMonth, r.ToDay, r.FromMonth, r.FromDay)
}

// mdBefore compares two month-day pairs lexicographically.
func mdBefore(m1, d1, m2, d2 int) bool {
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// SignNames returns the twelve sign names in zodiacal order.
func SignNames() []string {
	out := make([]string, 0, len(zodiacRules))
	for _, r := range zodiacRules {
		out = append(out, r.Sign)
	}
	return out
}
