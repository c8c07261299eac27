package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

const DefaultShippingFallbackLabel = "Mercado Envios"

// AnalyzeShipping agrupa as vendas pela forma de entrega.
// Forma vazia entra no grupo fallbackLabel. Sem a coluna, o resultado é vazio.
func AnalyzeShipping(view FilteredView, fallbackLabel string) []domain.ShippingRow {
	if !view.SalesColumns.ShippingMethod {
		return []domain.ShippingRow{}
	}
	if fallbackLabel == "" {
		fallbackLabel = DefaultShippingFallbackLabel
	}

	type group struct {
		sales int
		acc   *returnAccumulator
	}
	groups := make(map[string]*group)

	for _, sale := range view.Sales {
		method := strings.TrimSpace(sale.ShippingMethod)
		if method == "" {
			method = fallbackLabel
		}
		g, ok := groups[method]
		if !ok {
			g = &group{acc: newReturnAccumulator(view.Index)}
			groups[method] = g
		}
		g.sales++
		g.acc.add(sale)
	}

	rows := make([]domain.ShippingRow, 0, len(groups))
	for method, g := range groups {
		rows = append(rows, domain.ShippingRow{
			Method:  method,
			Sales:   g.sales,
			Returns: g.acc.returned,
			RatePct: utils.RoundWithOneDecimalPlace(utils.Percentage(g.acc.returned, g.sales)),
			Impact:  g.acc.impact().Round(2),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sales != rows[j].Sales {
			return rows[i].Sales > rows[j].Sales
		}
		return rows[i].Method < rows[j].Method
	})

	return rows
}
