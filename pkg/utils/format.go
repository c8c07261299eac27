package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata valores no padrão R$ 132.715,54 (negativos como -R$ 132.715,54)
func FormatBRL(value decimal.Decimal) string {
	v := value.Round(2)
	formatted := printer.Sprint(number.Decimal(v.Abs().InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if v.IsNegative() {
		return "-R$ " + formatted
	}
	return "R$ " + formatted
}

// FormatPercent formata um valor já em percentual: 21.1%
func FormatPercent(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// FormatRatioAsPercent converte uma razão (0..1) em percentual
func FormatRatioAsPercent(ratio float64, decimals int) string {
	return FormatPercent(ratio*100, decimals)
}

// FormatNumber usa ponto como separador de milhar: 7.857
func FormatNumber(value int) string {
	return printer.Sprintf("%d", value)
}

// FormatRisk arredonda o score e aplica separador de milhar: 185.802
func FormatRisk(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	return FormatNumber(int(math.Round(value)))
}
