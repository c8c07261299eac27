package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// MetricsOptions define a política de perda parcial
type MetricsOptions struct {
	PartialLoss      domain.PartialLossStrategy
	PartialLossRatio float64
}

func DefaultMetricsOptions() MetricsOptions {
	return MetricsOptions{
		PartialLoss:      domain.PartialLossShippingCost,
		PartialLossRatio: domain.DefaultPartialLossRatio,
	}
}

// ComputeMetrics calcula o pacote de métricas sobre vendas já filtradas.
// A janela não é aplicada aqui; isso é responsabilidade de ApplyFilters.
func ComputeMetrics(sales []domain.SaleRecord, index domain.ReturnIndex, opts MetricsOptions) domain.MetricsBundle {
	acc := newReturnAccumulator(index)

	bundle := domain.MetricsBundle{
		TotalSales:          len(sales),
		ProductRevenue:      decimal.Zero,
		TotalRevenue:        decimal.Zero,
		PartialLossStrategy: opts.strategy(),
	}

	for _, sale := range sales {
		bundle.TotalUnits += sale.Units
		bundle.ProductRevenue = bundle.ProductRevenue.Add(sale.ProductRevenue)
		bundle.TotalRevenue = bundle.TotalRevenue.Add(sale.TotalRevenue())
		acc.add(sale)
	}

	bundle.ReturnedOrders = acc.returned
	bundle.ReturnRate = utils.Ratio(acc.returned, bundle.TotalSales)
	bundle.ReturnedRevenue = acc.returnedRevenue
	bundle.FinancialImpact = acc.impact()
	bundle.TotalLoss = acc.impact()
	bundle.PartialLoss = opts.partialLoss(acc)
	bundle.Healthy = acc.healthy
	bundle.Critical = acc.critical
	bundle.Neutral = acc.neutral
	bundle.HealthyImpact = utils.Negative(acc.healthyImpact)
	bundle.CriticalImpact = utils.Negative(acc.criticalImpact)

	return bundle
}

func (o MetricsOptions) strategy() domain.PartialLossStrategy {
	if o.PartialLoss == domain.PartialLossRefundRatio {
		return domain.PartialLossRefundRatio
	}
	return domain.PartialLossShippingCost
}

func (o MetricsOptions) partialLoss(acc *returnAccumulator) decimal.Decimal {
	if o.strategy() == domain.PartialLossRefundRatio {
		return utils.Negative(acc.refund.Mul(decimal.NewFromFloat(o.PartialLossRatio)))
	}
	return utils.Negative(acc.shippingCost)
}
