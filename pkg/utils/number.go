package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

func Round(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

func Float64Ptr(f float64) *float64 {
	return &f
}
