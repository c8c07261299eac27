package analyzing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

var refDate = time.Date(2026, time.February, 24, 22, 51, 0, 0, time.UTC)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func daysAgo(n int) *time.Time {
	d := refDate.AddDate(0, 0, -n)
	return &d
}

func newSale(order, sku, revenue string) domain.SaleRecord {
	return domain.SaleRecord{
		OrderID:         order,
		SaleDate:        daysAgo(1),
		SKU:             sku,
		Units:           1,
		ProductRevenue:  dec(revenue),
		ShippingRevenue: decimal.Zero,
	}
}

func newReturn(order string, channel domain.Channel, refund string) domain.ReturnRecord {
	return domain.ReturnRecord{
		OrderID:      order,
		Channel:      channel,
		RefundAmount: dec(refund),
	}
}

func allColumns() domain.SalesColumns {
	return domain.SalesColumns{
		OrderID:         true,
		SaleDate:        true,
		SKU:             true,
		Units:           true,
		ProductRevenue:  true,
		ShippingRevenue: true,
		ShippingMethod:  true,
		Advertised:      true,
	}
}

func newDataset(sales []domain.SaleRecord, returnsA, returnsB []domain.ReturnRecord) *domain.Dataset {
	return &domain.Dataset{
		Sales:          sales,
		ReturnsA:       returnsA,
		ReturnsB:       returnsB,
		SalesColumns:   allColumns(),
		ReturnColumnsA: domain.ReturnColumns{OrderID: true, State: true, Reason: true},
		ReturnColumnsB: domain.ReturnColumns{OrderID: true, State: true, Reason: true},
		ReferenceDate:  refDate,
	}
}

// viewOf monta a visão sem filtros além da janela padrão
func viewOf(ds *domain.Dataset) FilteredView {
	return ApplyFilters(ds, domain.DefaultFilters())
}
