package utils

import (
	"math"
	"strconv"
)

// Clamp limits a value between min and max
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// FormatNumber prints a float the shortest way that round-trips,
// without exponent notation: 65 -> "65", 1012.5 -> "1012.5"
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatFixed prints a float with exactly places decimals, rounding
// halves away from zero: 12.25 -> "12.3"
func FormatFixed(value float64, places int) string {
	return strconv.FormatFloat(RoundTo(value, places), 'f', places, 64)
}
