package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// Percentage retorna part/total*100, ou 0 quando total é zero
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

// Ratio retorna part/total, ou 0 quando total é zero
func Ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(part) / float64(total)
}

// Negative devolve o valor com sinal de perda (sempre <= 0)
func Negative(d decimal.Decimal) decimal.Decimal {
	return d.Abs().Neg()
}
