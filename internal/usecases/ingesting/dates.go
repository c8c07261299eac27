package ingesting

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Formato: "24 de fevereiro de 2026 22:51 hs."
var saleDatePattern = regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+(\p{L}+)\s+de\s+(\d{4})\s+(\d{2}):(\d{2})`)

var monthsPTBR = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// ParseSaleDate converte a data por extenso da exportação de vendas.
// Valores que não seguem o formato, ou datas inexistentes, retornam nil.
func ParseSaleDate(value string) *time.Time {
	match := saleDatePattern.FindStringSubmatch(value)
	if match == nil {
		return nil
	}

	month, ok := monthsPTBR[normalizeCell(match[2])]
	if !ok {
		return nil
	}

	day, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[3])
	hour, _ := strconv.Atoi(match[4])
	minute, _ := strconv.Atoi(match[5])
	if hour > 23 || minute > 59 {
		return nil
	}

	date := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	// time.Date normaliza 30 de fevereiro para março
	if date.Day() != day || date.Month() != month {
		return nil
	}

	return &date
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
