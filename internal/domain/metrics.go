package domain

import "github.com/shopspring/decimal"

// HealthClass classifica a qualidade da resolução de uma devolução
type HealthClass string

const (
	HealthHealthy  HealthClass = "Saudável"
	HealthCritical HealthClass = "Crítica"
	HealthNeutral  HealthClass = "Neutra"
)

// PartialLossStrategy define como a perda parcial é calculada
type PartialLossStrategy string

const (
	// PartialLossShippingCost soma a coluna de custo de envio da devolução
	PartialLossShippingCost PartialLossStrategy = "shipping_cost"
	// PartialLossRefundRatio aplica um percentual fixo sobre o reembolso
	PartialLossRefundRatio PartialLossStrategy = "refund_ratio"
)

const DefaultPartialLossRatio = 0.22

// MetricsBundle agrega as métricas de uma visão filtrada.
// Valores de perda são sempre negativos ou zero.
type MetricsBundle struct {
	TotalSales          int                 `json:"total_sales"`
	TotalUnits          int                 `json:"total_units"`
	ProductRevenue      decimal.Decimal     `json:"product_revenue"`
	TotalRevenue        decimal.Decimal     `json:"total_revenue"`
	ReturnedOrders      int                 `json:"returned_orders"`
	ReturnRate          float64             `json:"return_rate"`
	ReturnedRevenue     decimal.Decimal     `json:"returned_revenue"`
	FinancialImpact     decimal.Decimal     `json:"financial_impact"`
	TotalLoss           decimal.Decimal     `json:"total_loss"`
	PartialLoss         decimal.Decimal     `json:"partial_loss"`
	Healthy             int                 `json:"healthy"`
	Critical            int                 `json:"critical"`
	Neutral             int                 `json:"neutral"`
	HealthyImpact       decimal.Decimal     `json:"healthy_impact"`
	CriticalImpact      decimal.Decimal     `json:"critical_impact"`
	PartialLossStrategy PartialLossStrategy `json:"partial_loss_strategy"`
}

// ReturnRatePct retorna a taxa de devolução em percentual
func (m MetricsBundle) ReturnRatePct() float64 {
	return m.ReturnRate * 100
}

// WindowMetrics são as métricas de uma janela fixa de dias
type WindowMetrics struct {
	WindowDays int           `json:"window_days"`
	Metrics    MetricsBundle `json:"metrics"`
}

// ChannelMetrics são as métricas considerando apenas as devoluções de um canal
type ChannelMetrics struct {
	Channel       Channel       `json:"channel"`
	Label         string        `json:"label"`
	ReturnRecords int           `json:"return_records"`
	Metrics       MetricsBundle `json:"metrics"`
}
