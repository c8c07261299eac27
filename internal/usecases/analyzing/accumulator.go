package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// returnAccumulator concentra a regra de pertinência, deduplicação por pedido e
// fallback de reembolso usada pelo motor de métricas e por todos os analisadores.
type returnAccumulator struct {
	index domain.ReturnIndex
	seen  map[string]struct{}

	returned        int
	returnedRevenue decimal.Decimal
	refund          decimal.Decimal // soma dos reembolsos, em módulo
	shippingCost    decimal.Decimal // soma dos custos de envio da devolução, em módulo

	healthy        int
	critical       int
	neutral        int
	healthyImpact  decimal.Decimal
	criticalImpact decimal.Decimal
}

func newReturnAccumulator(index domain.ReturnIndex) *returnAccumulator {
	return &returnAccumulator{
		index: index,
		seen:  make(map[string]struct{}),
	}
}

// add registra a venda e retorna true quando ela abre um novo pedido devolvido.
// Pedidos repetidos não voltam a somar devoluções.
func (a *returnAccumulator) add(sale domain.SaleRecord) bool {
	records := a.index.Lookup(sale.OrderID)
	if len(records) == 0 {
		return false
	}
	if _, ok := a.seen[sale.OrderID]; ok {
		return false
	}
	a.seen[sale.OrderID] = struct{}{}

	a.returned++
	a.returnedRevenue = a.returnedRevenue.Add(sale.ProductRevenue)

	for _, rec := range records {
		refund := ResolveRefund(rec, sale)
		a.refund = a.refund.Add(refund)
		a.shippingCost = a.shippingCost.Add(rec.ReturnShippingCost.Abs())

		switch ClassifyHealth(rec) {
		case domain.HealthHealthy:
			a.healthy++
			a.healthyImpact = a.healthyImpact.Add(refund)
		case domain.HealthCritical:
			a.critical++
			a.criticalImpact = a.criticalImpact.Add(refund)
		default:
			a.neutral++
		}
	}

	return true
}

// impact é o impacto financeiro com sinal de perda
func (a *returnAccumulator) impact() decimal.Decimal {
	return utils.Negative(a.refund)
}
