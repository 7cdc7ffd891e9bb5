package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRate calcula numerador/denominador * 100 com proteção contra divisão por zero
func SafeRate(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(numerator / denominator * 100)
}
