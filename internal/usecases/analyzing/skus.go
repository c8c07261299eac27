package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

const (
	criticalRatePct  = 15.0
	attentionRatePct = 8.0
)

// SKUQuery define ordenação e corte da visão de SKUs. Top <= 0 mantém todos.
type SKUQuery struct {
	Sort domain.SKUSort
	Top  int
}

type skuGroup struct {
	sales int
	acc   *returnAccumulator
}

// AnalyzeSKUs calcula taxa, impacto e risco por SKU. Só entram SKUs com ao menos um pedido devolvido.
func AnalyzeSKUs(view FilteredView, query SKUQuery) domain.SKUReport {
	report := domain.SKUReport{Rows: []domain.SKURow{}}
	if !view.SalesColumns.SKU {
		return report
	}

	groups := make(map[string]*skuGroup)
	for _, sale := range view.Sales {
		key := skuKey(sale.SKU)
		g, ok := groups[key]
		if !ok {
			g = &skuGroup{acc: newReturnAccumulator(view.Index)}
			groups[key] = g
		}
		g.sales++
		g.acc.add(sale)
	}

	rows := make([]domain.SKURow, 0, len(groups))
	for sku, g := range groups {
		if g.acc.returned == 0 {
			continue
		}
		report.TotalReturns += g.acc.returned
		rows = append(rows, buildSKURow(sku, g))
	}

	sortSKURows(rows, domain.SKUSortReturns)
	report.Top10Share = Concentration(rows, 10)
	report.Top20Share = Concentration(rows, 20)

	sortSKURows(rows, query.Sort)
	if query.Top > 0 && len(rows) > query.Top {
		rows = rows[:query.Top]
	}
	report.Rows = rows

	return report
}

func buildSKURow(sku string, g *skuGroup) domain.SKURow {
	rate := utils.Percentage(g.acc.returned, g.sales)
	magnitude, _ := g.acc.refund.Float64()

	risk := 0.0
	if magnitude > 0 {
		risk = rate * magnitude / 100
	}

	return domain.SKURow{
		SKU:        sku,
		Sales:      g.sales,
		Returns:    g.acc.returned,
		RatePct:    utils.RoundWithOneDecimalPlace(rate),
		Impact:     g.acc.impact().Round(2),
		Refund:     g.acc.impact().Round(2),
		ReturnCost: utils.Negative(g.acc.shippingCost).Round(2),
		RiskScore:  roundRisk(risk),
		Class:      classifyRate(rate),
	}
}

func classifyRate(ratePct float64) domain.RiskClass {
	switch {
	case ratePct >= criticalRatePct:
		return domain.RiskCritical
	case ratePct >= attentionRatePct:
		return domain.RiskAttention
	default:
		return domain.RiskNeutral
	}
}

func roundRisk(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(3).Float64()
	return f
}

// sortSKURows ordena no lugar. Empates sempre caem para o nome do SKU.
func sortSKURows(rows []domain.SKURow, by domain.SKUSort) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch by {
		case domain.SKUSortRate:
			if a.RatePct != b.RatePct {
				return a.RatePct > b.RatePct
			}
		case domain.SKUSortLoss:
			if !a.Impact.Equal(b.Impact) {
				return a.Impact.LessThan(b.Impact)
			}
		case domain.SKUSortRisk:
			if a.RiskScore != b.RiskScore {
				return a.RiskScore > b.RiskScore
			}
		default:
			if a.Returns != b.Returns {
				return a.Returns > b.Returns
			}
		}
		return a.SKU < b.SKU
	})
}

// Concentration é a participação, em %, dos n SKUs com mais devoluções no total de devoluções
func Concentration(rows []domain.SKURow, n int) float64 {
	if n <= 0 || len(rows) == 0 {
		return 0
	}

	counts := make([]int, len(rows))
	total := 0
	for i, row := range rows {
		counts[i] = row.Returns
		total += row.Returns
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	if n > len(counts) {
		n = len(counts)
	}
	top := 0
	for _, c := range counts[:n] {
		top += c
	}

	return utils.RoundWithOneDecimalPlace(utils.Percentage(top, total))
}
