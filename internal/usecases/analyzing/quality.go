package analyzing

import (
	"strings"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// AssessQuality mede o preenchimento do dataset completo, sem filtros.
// Coluna ausente não conta como célula vazia.
func AssessQuality(ds *domain.Dataset) domain.QualityReport {
	report := domain.QualityReport{
		Sales:    salesQuality(ds.Sales, ds.SalesColumns),
		ChannelA: returnQuality(ds.ReturnsA, ds.ReturnColumnsA),
		ChannelB: returnQuality(ds.ReturnsB, ds.ReturnColumnsB),
	}

	report.LogisticCostMissing = missingLogisticCost(ds.ReturnsA) || missingLogisticCost(ds.ReturnsB)

	return report
}

func salesQuality(sales []domain.SaleRecord, cols domain.SalesColumns) domain.SalesQuality {
	var noOrder, noDate, noRevenue, noSKU int
	for _, sale := range sales {
		if cols.OrderID && sale.OrderID == "" {
			noOrder++
		}
		if cols.SaleDate && sale.SaleDate == nil {
			noDate++
		}
		if cols.ProductRevenue && sale.RevenueMissing {
			noRevenue++
		}
		if cols.SKU && sale.SKU == "" {
			noSKU++
		}
	}

	total := len(sales)
	return domain.SalesQuality{
		Rows:              total,
		MissingOrderIDPct: utils.RoundWithOneDecimalPlace(utils.Percentage(noOrder, total)),
		MissingDatePct:    utils.RoundWithOneDecimalPlace(utils.Percentage(noDate, total)),
		MissingRevenuePct: utils.RoundWithOneDecimalPlace(utils.Percentage(noRevenue, total)),
		MissingSKUPct:     utils.RoundWithOneDecimalPlace(utils.Percentage(noSKU, total)),
	}
}

func returnQuality(returns []domain.ReturnRecord, cols domain.ReturnColumns) domain.ReturnQuality {
	var noState, noReason int
	for _, rec := range returns {
		if cols.State && strings.TrimSpace(rec.State) == "" {
			noState++
		}
		if cols.Reason && strings.TrimSpace(rec.Reason) == "" {
			noReason++
		}
	}

	total := len(returns)
	return domain.ReturnQuality{
		Rows:             total,
		MissingStatePct:  utils.RoundWithOneDecimalPlace(utils.Percentage(noState, total)),
		MissingReasonPct: utils.RoundWithOneDecimalPlace(utils.Percentage(noReason, total)),
	}
}

// missingLogisticCost indica um canal com devoluções e nenhum custo logístico preenchido
func missingLogisticCost(returns []domain.ReturnRecord) bool {
	if len(returns) == 0 {
		return false
	}
	for _, rec := range returns {
		if rec.HasLogisticCost {
			return false
		}
	}
	return true
}
