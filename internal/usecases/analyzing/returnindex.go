package analyzing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

// BuildReturnIndex concatena as devoluções dos canais e agrupa pelo número da venda.
// Registros sem número de venda ficam de fora, pois não casam com nenhuma venda.
func BuildReturnIndex(returns ...[]domain.ReturnRecord) domain.ReturnIndex {
	index := make(domain.ReturnIndex)
	for _, channel := range returns {
		for _, rec := range channel {
			if rec.OrderID == "" {
				continue
			}
			index[rec.OrderID] = append(index[rec.OrderID], rec)
		}
	}
	return index
}

// ResolveRefund retorna o valor reembolsado de uma devolução, em módulo.
// Reembolso zerado cai para a receita do produto na venda e, depois, para a receita da própria linha de devolução.
func ResolveRefund(rec domain.ReturnRecord, sale domain.SaleRecord) decimal.Decimal {
	if !rec.RefundAmount.IsZero() {
		return rec.RefundAmount.Abs()
	}
	if !sale.ProductRevenue.IsZero() {
		return sale.ProductRevenue.Abs()
	}
	return rec.ProductRevenue.Abs()
}
