package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Average retorna a média com duas casas decimais; zero para lista vazia
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return RoundWithTwoDecimalPlace(sum / float64(len(values)))
}
