package dice

// Chance rolls once against probability p in [0, 1]
func Chance(r Roller, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
