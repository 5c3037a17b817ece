package shared

import "math"

// RoundInt rounds to the nearest integer. Used for power, rewards and item level.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Round3 rounds to three decimal places. Used for efficiency multipliers.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Round1 rounds to one decimal place. Used for percent progress.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
