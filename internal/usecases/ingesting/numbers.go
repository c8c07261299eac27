package ingesting

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumber aceita 1234.56, 1.234,56, 1,234.56 e R$ 1.234,56.
// ok é falso para célula vazia ou valor inválido.
func parseNumber(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	s = strings.NewReplacer("R$", "", " ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// parseMoney converte valores monetários tratando falhas como zero
func parseMoney(value string) decimal.Decimal {
	d, _ := parseNumber(value)
	return d
}

// parseUnits lê a quantidade de unidades; vazio ou inválido vale 1
func parseUnits(value string) int {
	d, ok := parseNumber(value)
	if !ok {
		return 1
	}
	return int(d.IntPart())
}
