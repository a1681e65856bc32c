package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais (percentuais e KPIs)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToInt arredonda para o inteiro mais próximo, usado nas médias de interações
func RoundToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int64(math.Round(f))
}

// SafeDiv devolve zero quando o denominador é zero
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
