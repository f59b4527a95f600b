package numerology

import "fateshift/pkg/models"

// The four life-stage age windows are fixed regardless of input.
var stageWindows = [4][2]int{{0, 36}, {36, 45}, {45, 54}, {54, 120}}

var pinnacleExplanations = [4]string{
	"First pinnacle: formative years, learning your core lesson.",
	"Second pinnacle: building, responsibility and family themes.",
	"Third pinnacle: maturity, integrating the first two lessons.",
	"Fourth pinnacle: the long harvest of everything built before.",
}

var challengeExplanations = [4]string{
	"First challenge: the obstacle met while growing up.",
	"Second challenge: the obstacle of mid-life building.",
	"Third challenge: the combined tension of the first two.",
	"Fourth challenge: the lesson that persists into late life.",
}

// PinnaclesAndChallenges derives the four pinnacle values (master-number
// preserving reduction) and four challenge values (raw absolute
// differences, never reduced) from the birth date components.
func PinnaclesAndChallenges(year, month, day int) (pinnacles, challenges []models.PinnacleOrChallenge) {
	p1 := Reduce(month + day)
	p2 := Reduce(day + year)
	p3 := Reduce(p1 + p2)
	p4 := Reduce(month + year)

	c1 := abs(month - day)
	c2 := abs(day - year)
	c3 := abs(p1 - p2)
	c4 := abs(p2 - p3)

	pv := [4]int{p1, p2, p3, p4}
	cv := [4]int{c1, c2, c3, c4}

	pinnacles = make([]models.PinnacleOrChallenge, 0, 4)
	challenges = make([]models.PinnacleOrChallenge, 0, 4)
	for i := 0; i < 4; i++ {
		pinnacles = append(pinnacles, models.PinnacleOrChallenge{
			Value:       pv[i],
			AgeFrom:     stageWindows[i][0],
			AgeTo:       stageWindows[i][1],
			Explanation: pinnacleExplanations[i],
		})
		challenges = append(challenges, models.PinnacleOrChallenge{
			Value:       cv[i],
			AgeFrom:     stageWindows[i][0],
			AgeTo:       stageWindows[i][1],
			Explanation: challengeExplanations[i],
		})
	}
	return pinnacles, challenges
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
