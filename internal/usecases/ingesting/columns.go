package ingesting

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/schollz/closestmatch"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Nomes das colunas na exportação do marketplace
const (
	ColOrderID         = "N.º de venda"
	ColSaleDate        = "Data da venda"
	ColSKU             = "SKU"
	ColUnits           = "Unidades"
	ColProductRevenue  = "Receita por produtos (BRL)"
	ColShippingRevenue = "Receita por envio (BRL)"
	ColShippingMethod  = "Forma de entrega"
	ColAdvertised      = "Venda por publicidade"

	ColRefund             = "Cancelamentos e reembolsos (BRL)"
	ColReturnShippingCost = "Custos de envio (BRL)"
	ColState              = "Estado"
	ColStatus             = "Descrição do status"
	ColReason             = "Motivo do resultado"
	ColLogisticCost       = "Custo de envio com base nas medidas e peso declarados"
)

const advertisedValue = "Sim"

var (
	salesHeaderKeys   = []string{"n.º de venda", "data da venda", "sku"}
	returnsHeaderKeys = []string{"n.º de venda"}

	salesNumericMarkers   = []string{"brl", "receita", "custo", "tarifa"}
	returnsNumericMarkers = []string{"brl", "reembolso", "custo", "tarifa"}

	salesColumns = []string{
		ColOrderID, ColSaleDate, ColSKU, ColUnits, ColProductRevenue,
		ColShippingRevenue, ColShippingMethod, ColAdvertised,
	}
	returnColumns = []string{
		ColOrderID, ColState, ColStatus, ColReason, ColRefund,
		ColReturnShippingCost, ColProductRevenue, ColLogisticCost,
	}
)

// maxHeaderDistance é a maior distância de edição aceita entre um cabeçalho e o nome esperado
const maxHeaderDistance = 2

// normalizeCell aplica NFC e lower-case, para comparar acentos gravados em NFD
func normalizeCell(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// foldKey remove acentos, pontuação e espaços
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasMarker(column string, markers []string) bool {
	lower := normalizeCell(column)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// columnIndex mapeia os nomes esperados para a posição no cabeçalho
type columnIndex map[string]int

func (c columnIndex) has(name string) bool {
	_, ok := c[name]
	return ok
}

func (c columnIndex) value(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// resolveColumns localiza as colunas esperadas. Nomes exatos têm prioridade;
// cabeçalhos restantes só são aceitos quando diferem por acento, espaço ou poucas letras.
func resolveColumns(header []string, expected []string) columnIndex {
	index := make(columnIndex)
	used := make(map[int]bool)

	for i, h := range header {
		name := strings.TrimSpace(norm.NFC.String(h))
		for _, exp := range expected {
			if _, taken := index[exp]; !taken && name == exp {
				index[exp] = i
				used[i] = true
				break
			}
		}
	}

	missing := make(map[string]string)
	keys := make([]string, 0, len(expected))
	for _, exp := range expected {
		if !index.has(exp) {
			key := foldKey(exp)
			missing[key] = exp
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return index
	}

	cm := closestmatch.New(keys, []int{2, 3})
	for i, h := range header {
		if used[i] {
			continue
		}
		key := foldKey(h)
		if key == "" {
			continue
		}

		candidate := cm.Closest(key)
		exp, ok := missing[candidate]
		if !ok || index.has(exp) {
			continue
		}
		if levenshtein.ComputeDistance(key, candidate) <= maxHeaderDistance {
			index[exp] = i
			used[i] = true
		}
	}

	return index
}

// normalizeOrderID remove o sufixo ".0" de números de venda lidos como decimal
func normalizeOrderID(value string) string {
	id := strings.TrimSpace(value)
	if trimmed, ok := strings.CutSuffix(id, ".0"); ok && trimmed != "" && isDigits(trimmed) {
		return trimmed
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
