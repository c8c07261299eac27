package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/returns-insights-api/internal/domain"
)

const unknownSKU = "N/A"

// FilteredView é uma cópia do dataset após os filtros, com o índice de devoluções já montado.
// Todos os analisadores recebem a mesma visão.
type FilteredView struct {
	Sales          []domain.SaleRecord
	Returns        []domain.ReturnRecord
	Index          domain.ReturnIndex
	Filters        domain.Filters
	ReferenceDate  time.Time
	WindowStart    time.Time
	SalesColumns   domain.SalesColumns
	HasReasonField bool
}

// ApplyFilters aplica janela, publicidade, canal e top SKUs, nessa ordem.
// O dataset nunca é alterado; a visão trabalha sobre slices novos.
func ApplyFilters(ds *domain.Dataset, f domain.Filters) FilteredView {
	ref := ds.ReferenceDate
	if f.ReferenceDate != nil {
		ref = *f.ReferenceDate
	}
	window := f.WindowDays
	if window <= 0 {
		window = domain.DefaultWindowDays
	}
	start := ref.AddDate(0, 0, -window)

	sales := make([]domain.SaleRecord, 0, len(ds.Sales))
	for _, sale := range ds.Sales {
		if !sale.InWindow(start, ref) {
			continue
		}
		if f.AdsOnly && !sale.Advertised {
			continue
		}
		sales = append(sales, sale)
	}

	channelReturns := make([]domain.ReturnRecord, 0, len(ds.ReturnsA)+len(ds.ReturnsB))
	if f.Channel.Includes(domain.ChannelA) {
		channelReturns = append(channelReturns, ds.ReturnsA...)
	}
	if f.Channel.Includes(domain.ChannelB) {
		channelReturns = append(channelReturns, ds.ReturnsB...)
	}

	returns := restrictReturns(channelReturns, sales)

	if f.TopSKUs {
		top := topSKUs(sales, BuildReturnIndex(returns), f.TopN())
		kept := make([]domain.SaleRecord, 0, len(sales))
		for _, sale := range sales {
			if _, ok := top[skuKey(sale.SKU)]; ok {
				kept = append(kept, sale)
			}
		}
		sales = kept
		returns = restrictReturns(returns, sales)
	}

	return FilteredView{
		Sales:          sales,
		Returns:        returns,
		Index:          BuildReturnIndex(returns),
		Filters:        f,
		ReferenceDate:  ref,
		WindowStart:    start,
		SalesColumns:   ds.SalesColumns,
		HasReasonField: ds.HasReasonColumn(),
	}
}

// restrictReturns mantém apenas devoluções de pedidos presentes nas vendas
func restrictReturns(returns []domain.ReturnRecord, sales []domain.SaleRecord) []domain.ReturnRecord {
	orders := make(map[string]struct{}, len(sales))
	for _, sale := range sales {
		if sale.OrderID != "" {
			orders[sale.OrderID] = struct{}{}
		}
	}

	out := make([]domain.ReturnRecord, 0, len(returns))
	for _, rec := range returns {
		if _, ok := orders[rec.OrderID]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// topSKUs retorna os n SKUs com mais pedidos devolvidos. Empates são resolvidos pelo nome.
func topSKUs(sales []domain.SaleRecord, index domain.ReturnIndex, n int) map[string]struct{} {
	type skuCount struct {
		sku   string
		count int
	}

	seen := make(map[string]map[string]struct{})
	for _, sale := range sales {
		if !index.Has(sale.OrderID) {
			continue
		}
		key := skuKey(sale.SKU)
		if seen[key] == nil {
			seen[key] = make(map[string]struct{})
		}
		seen[key][sale.OrderID] = struct{}{}
	}

	counts := make([]skuCount, 0, len(seen))
	for sku, orders := range seen {
		counts = append(counts, skuCount{sku: sku, count: len(orders)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].sku < counts[j].sku
	})

	if len(counts) > n {
		counts = counts[:n]
	}

	top := make(map[string]struct{}, len(counts))
	for _, c := range counts {
		top[c.sku] = struct{}{}
	}
	return top
}

func skuKey(sku string) string {
	if sku == "" {
		return unknownSKU
	}
	return sku
}
