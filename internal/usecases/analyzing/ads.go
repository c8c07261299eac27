package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// AnalyzeAds separa vendas com publicidade das orgânicas. Um lado sem vendas é omitido.
func AnalyzeAds(view FilteredView) []domain.AdsRow {
	rows := []domain.AdsRow{}
	if !view.SalesColumns.Advertised {
		return rows
	}

	var advertised, organic []domain.SaleRecord
	for _, sale := range view.Sales {
		if sale.Advertised {
			advertised = append(advertised, sale)
		} else {
			organic = append(organic, sale)
		}
	}

	if row, ok := adsRow(domain.AdsAdvertised, advertised, view.Index); ok {
		rows = append(rows, row)
	}
	if row, ok := adsRow(domain.AdsOrganic, organic, view.Index); ok {
		rows = append(rows, row)
	}

	return rows
}

func adsRow(kind string, sales []domain.SaleRecord, index domain.ReturnIndex) (domain.AdsRow, bool) {
	if len(sales) == 0 {
		return domain.AdsRow{}, false
	}

	acc := newReturnAccumulator(index)
	revenue := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.ProductRevenue)
		acc.add(sale)
	}

	return domain.AdsRow{
		Kind:    kind,
		Sales:   len(sales),
		Returns: acc.returned,
		RatePct: utils.RoundWithOneDecimalPlace(utils.Percentage(acc.returned, len(sales))),
		Revenue: revenue.Round(2),
		Impact:  acc.impact().Round(2),
	}, true
}
