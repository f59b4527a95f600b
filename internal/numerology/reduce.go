package numerology

// Reduce collapses a non-negative integer to a single digit by repeated
// digit summing, stopping early at the master numbers 11, 22 and 33.
func Reduce(n int) int {
	for n > 9 && n != 11 && n != 22 && n != 33 {
		n = digitSum(n)
	}
	return n
}

// ReducePlain collapses to a single digit with no master-number stop.
//
// Personal Year numbers use this variant while Life Path and Pinnacle
// values use Reduce. The split is deliberate: unifying the two rules
// would change observable results.
func ReducePlain(n int) int {
	for n > 9 {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
