package astro

// animals is the Chinese zodiac cycle with Rat at index 0.
var animals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// ratYear is a reference year of the Rat anchoring the 12-year cycle.
const ratYear = 1900

// ChineseZodiac maps a calendar year to its animal. The lunar new-year
// boundary is ignored: the mapping is by calendar year only.
func ChineseZodiac(year int) string {
	idx := (year - ratYear) % 12
	if idx < 0 {
		idx += 12
	}
	return animals[idx]
}

// AnimalNames returns the twelve animals in cycle order, starting at Rat.
func AnimalNames() []string {
	return animals[:]
}
