package utils

import "strconv"

// Ratio retorna part/total*100, ou 0 quando o denominador é zero
func Ratio(part, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

// FormatTwoDecimals formata o valor com duas casas decimais ("30.00")
func FormatTwoDecimals(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatPercentage calcula part/total*100 e devolve como string com duas casas.
// Quando total é zero o resultado é sempre "0.00".
func FormatPercentage(part, total int64) string {
	return FormatTwoDecimals(Ratio(part, total))
}
