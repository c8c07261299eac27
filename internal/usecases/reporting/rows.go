package reporting

import (
	"strconv"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// Row é uma linha rótulo/valor já formatada para exibição
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryRows monta o resumo das métricas, na ordem do relatório
func SummaryRows(m domain.MetricsBundle) []Row {
	return []Row{
		{"Total de Vendas", utils.FormatNumber(m.TotalSales)},
		{"Unidades Vendidas", utils.FormatNumber(m.TotalUnits)},
		{"Faturamento Produtos", utils.FormatBRL(m.ProductRevenue)},
		{"Faturamento Total", utils.FormatBRL(m.TotalRevenue)},
		{"Taxa de Devolução", utils.FormatRatioAsPercent(m.ReturnRate, 1)},
		{"Devoluções", utils.FormatNumber(m.ReturnedOrders)},
		{"Faturamento Devolvido", utils.FormatBRL(m.ReturnedRevenue)},
		{"Impacto Financeiro", utils.FormatBRL(m.FinancialImpact)},
		{"Perda Total", utils.FormatBRL(m.TotalLoss)},
		{"Perda Parcial", utils.FormatBRL(m.PartialLoss)},
		{"Devoluções Saudáveis", utils.FormatNumber(m.Healthy)},
		{"Devoluções Críticas", utils.FormatNumber(m.Critical)},
		{"Devoluções Neutras", utils.FormatNumber(m.Neutral)},
		{"Impacto Saudáveis", utils.FormatBRL(m.HealthyImpact)},
		{"Impacto Críticas", utils.FormatBRL(m.CriticalImpact)},
		{"Critério de Perda Parcial", partialLossLabel(m.PartialLossStrategy)},
	}
}

func partialLossLabel(s domain.PartialLossStrategy) string {
	if s == domain.PartialLossRefundRatio {
		return "Percentual do reembolso"
	}
	return "Custo de envio da devolução"
}

// QualityRows monta o relatório de preenchimento das planilhas
func QualityRows(q domain.QualityReport) []Row {
	logistic := "Não"
	if q.LogisticCostMissing {
		logistic = "Sim"
	}

	return []Row{
		{"Linhas de vendas", utils.FormatNumber(q.Sales.Rows)},
		{"SKU sem informação", utils.FormatPercent(q.Sales.MissingSKUPct, 1)},
		{"Data sem informação", utils.FormatPercent(q.Sales.MissingDatePct, 1)},
		{"N.º de venda sem informação", utils.FormatPercent(q.Sales.MissingOrderIDPct, 1)},
		{"Receita sem informação", utils.FormatPercent(q.Sales.MissingRevenuePct, 1)},
		{"Devoluções Matriz", utils.FormatNumber(q.ChannelA.Rows)},
		{"Devoluções Matriz - Sem motivo", utils.FormatPercent(q.ChannelA.MissingReasonPct, 1)},
		{"Devoluções Matriz - Sem estado", utils.FormatPercent(q.ChannelA.MissingStatePct, 1)},
		{"Devoluções Full", utils.FormatNumber(q.ChannelB.Rows)},
		{"Devoluções Full - Sem motivo", utils.FormatPercent(q.ChannelB.MissingReasonPct, 1)},
		{"Devoluções Full - Sem estado", utils.FormatPercent(q.ChannelB.MissingStatePct, 1)},
		{"Custo logístico ausente", logistic},
	}
}

// SimulationRows compara o cenário atual com o simulado
func SimulationRows(sim domain.Simulation) []Row {
	return []Row{
		{"Redução Simulada", utils.FormatPercent(sim.ReductionPct, 1)},
		{"Devoluções Atuais", utils.FormatNumber(sim.Current.Returns)},
		{"Devoluções Simuladas", utils.FormatNumber(sim.Simulated.Returns)},
		{"Taxa Atual", utils.FormatPercent(sim.Current.RatePct, 1)},
		{"Taxa Simulada", utils.FormatPercent(sim.Simulated.RatePct, 1)},
		{"Impacto Atual", utils.FormatBRL(sim.Current.Impact)},
		{"Impacto Simulado", utils.FormatBRL(sim.Simulated.Impact)},
		{"Economia", utils.FormatBRL(sim.Savings)},
	}
}

// Table é uma tabela com cabeçalho e linhas já formatadas
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func WindowTable(windows []domain.WindowMetrics) Table {
	t := Table{
		Header: []string{"Período (dias)", "Vendas", "Faturamento", "Devoluções", "Taxa", "Impacto", "Perda Parcial"},
		Rows:   make([][]string, 0, len(windows)),
	}
	for _, w := range windows {
		m := w.Metrics
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(w.WindowDays),
			utils.FormatNumber(m.TotalSales),
			utils.FormatBRL(m.TotalRevenue),
			utils.FormatNumber(m.ReturnedOrders),
			utils.FormatRatioAsPercent(m.ReturnRate, 1),
			utils.FormatBRL(m.TotalLoss),
			utils.FormatBRL(m.PartialLoss),
		})
	}
	return t
}

func ChannelTable(channels []domain.ChannelMetrics) Table {
	t := Table{
		Header: []string{"Canal", "Registros", "Devoluções", "Taxa", "Impacto", "Saudáveis", "Críticas"},
		Rows:   make([][]string, 0, len(channels)),
	}
	for _, c := range channels {
		t.Rows = append(t.Rows, []string{
			c.Label,
			utils.FormatNumber(c.ReturnRecords),
			utils.FormatNumber(c.Metrics.ReturnedOrders),
			utils.FormatRatioAsPercent(c.Metrics.ReturnRate, 1),
			utils.FormatBRL(c.Metrics.FinancialImpact),
			utils.FormatNumber(c.Metrics.Healthy),
			utils.FormatNumber(c.Metrics.Critical),
		})
	}
	return t
}

func SKUTable(report domain.SKUReport) Table {
	t := Table{
		Header: []string{"SKU", "Vendas", "Dev.", "Taxa", "Impacto", "Reemb.", "Custo Dev.", "Risco", "Classe"},
		Rows:   make([][]string, 0, len(report.Rows)),
	}
	for _, r := range report.Rows {
		t.Rows = append(t.Rows, []string{
			r.SKU,
			utils.FormatNumber(r.Sales),
			utils.FormatNumber(r.Returns),
			utils.FormatPercent(r.RatePct, 1),
			utils.FormatBRL(r.Impact),
			utils.FormatBRL(r.Refund),
			utils.FormatBRL(r.ReturnCost),
			utils.FormatRisk(r.RiskScore),
			string(r.Class),
		})
	}
	return t
}

func ShippingTable(rows []domain.ShippingRow) Table {
	t := Table{
		Header: []string{"Forma de Entrega", "Vendas", "Devoluções", "Taxa", "Impacto"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Method,
			utils.FormatNumber(r.Sales),
			utils.FormatNumber(r.Returns),
			utils.FormatPercent(r.RatePct, 1),
			utils.FormatBRL(r.Impact),
		})
	}
	return t
}

func ReasonTable(rows []domain.ReasonRow) Table {
	t := Table{
		Header: []string{"Motivo", "Quantidade", "Percentual"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Reason, utils.FormatNumber(r.Count), utils.FormatPercent(r.Percent, 1)})
	}
	return t
}

func AdsTable(rows []domain.AdsRow) Table {
	t := Table{
		Header: []string{"Tipo", "Vendas", "Devoluções", "Taxa", "Receita", "Impacto"},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Kind,
			utils.FormatNumber(r.Sales),
			utils.FormatNumber(r.Returns),
			utils.FormatPercent(r.RatePct, 1),
			utils.FormatBRL(r.Revenue),
			utils.FormatBRL(r.Impact),
		})
	}
	return t
}
