package reporting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

func sampleOverview() *domain.Overview {
	metrics := domain.MetricsBundle{
		TotalSales:          7857,
		TotalUnits:          8000,
		ProductRevenue:      decimal.RequireFromString("132715.54"),
		TotalRevenue:        decimal.RequireFromString("140000"),
		ReturnedOrders:      641,
		ReturnRate:          0.0816,
		FinancialImpact:     decimal.RequireFromString("-52446.24"),
		TotalLoss:           decimal.RequireFromString("-52446.24"),
		PartialLoss:         decimal.RequireFromString("-1234.5"),
		PartialLossStrategy: domain.PartialLossShippingCost,
	}
	return &domain.Overview{
		Filters:       domain.DefaultFilters(),
		ReferenceDate: time.Date(2026, 2, 24, 22, 51, 0, 0, time.UTC),
		WindowStart:   time.Date(2025, 8, 28, 22, 51, 0, 0, time.UTC),
		Metrics:       metrics,
		Windows:       []domain.WindowMetrics{{WindowDays: 30, Metrics: metrics}},
		Channels:      []domain.ChannelMetrics{{Channel: domain.ChannelA, Label: "Matriz", ReturnRecords: 3, Metrics: metrics}},
		SKUs: domain.SKUReport{Rows: []domain.SKURow{{
			SKU: "ABC", Sales: 10, Returns: 2, RatePct: 20, Impact: decimal.RequireFromString("-200"),
			Refund: decimal.RequireFromString("-200"), ReturnCost: decimal.Zero, RiskScore: 40, Class: domain.RiskCritical,
		}}},
		Quality: domain.QualityReport{Sales: domain.SalesQuality{Rows: 10, MissingSKUPct: 12.5}, LogisticCostMissing: true},
	}
}

func rowValue(rows []Row, label string) string {
	for _, r := range rows {
		if r.Label == label {
			return r.Value
		}
	}
	return ""
}

func TestSummaryRows(t *testing.T) {
	rows := SummaryRows(sampleOverview().Metrics)

	tests := []struct {
		label string
		want  string
	}{
		{"Total de Vendas", "7.857"},
		{"Faturamento Produtos", "R$ 132.715,54"},
		{"Taxa de Devolução", "8.2%"},
		{"Devoluções", "641"},
		{"Impacto Financeiro", "-R$ 52.446,24"},
		{"Perda Parcial", "-R$ 1.234,50"},
		{"Critério de Perda Parcial", "Custo de envio da devolução"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, rowValue(rows, tt.label))
		})
	}
}

func TestQualityRows(t *testing.T) {
	rows := QualityRows(sampleOverview().Quality)

	assert.Equal(t, "12.5%", rowValue(rows, "SKU sem informação"))
	assert.Equal(t, "0.0%", rowValue(rows, "Devoluções Full - Sem estado"))
	assert.Equal(t, "Sim", rowValue(rows, "Custo logístico ausente"))
}

func TestTables(t *testing.T) {
	o := sampleOverview()

	windows := WindowTable(o.Windows)
	require.Len(t, windows.Rows, 1)
	assert.Equal(t, []string{"30", "7.857", "R$ 140.000,00", "641", "8.2%", "-R$ 52.446,24", "-R$ 1.234,50"}, windows.Rows[0])

	skus := SKUTable(o.SKUs)
	require.Len(t, skus.Rows, 1)
	assert.Equal(t, []string{"ABC", "10", "2", "20.0%", "-R$ 200,00", "-R$ 200,00", "R$ 0,00", "40", "Crítica"}, skus.Rows[0])
	assert.Len(t, skus.Header, len(skus.Rows[0]))

	assert.Empty(t, ReasonTable(nil).Rows)
}

func TestMergeRawTables(t *testing.T) {
	a := domain.RawTable{Header: []string{"N.º de venda", "Estado"}, Rows: [][]string{{"1", "Cancelada"}}}
	b := domain.RawTable{Header: []string{"N.º de venda", "Custo"}, Rows: [][]string{{"2", "10"}, {"3"}}}

	merged := mergeRawTables(a, b)

	assert.Equal(t, []string{"N.º de venda", "Estado", "Custo"}, merged.Header)
	assert.Equal(t, [][]string{{"1", "Cancelada", ""}, {"2", "", "10"}, {"3", "", ""}}, merged.Rows)
}

func TestMergeRawTables_Numeric(t *testing.T) {
	a := domain.RawTable{Header: []string{"N.º de venda", "Estado"}, Numeric: []bool{false, false}}
	b := domain.RawTable{Header: []string{"N.º de venda", "Custo"}, Numeric: []bool{false, true}}

	merged := mergeRawTables(a, b)

	assert.Equal(t, []bool{false, false, true}, merged.Numeric)
}

func TestRawSheet_NumericColumns(t *testing.T) {
	raw := domain.RawTable{
		Header:  []string{"N.º de venda", "Receita por produtos (BRL)"},
		Rows:    [][]string{{"2000012345678901", "1234.56"}, {"2000012345678902", ""}},
		Numeric: []bool{false, true},
	}

	sheet := rawSheet(SheetSalesRaw, raw)

	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "2000012345678901", sheet.Rows[0][0])
	require.IsType(t, decimal.Decimal{}, sheet.Rows[0][1])
	assert.True(t, decimal.RequireFromString("1234.56").Equal(sheet.Rows[0][1].(decimal.Decimal)))
	assert.Equal(t, "", sheet.Rows[1][1])

	var buf bytes.Buffer
	require.NoError(t, spreadsheet.WriteWorkbook(&buf, []spreadsheet.Sheet{sheet}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	idType, err := f.GetCellType(SheetSalesRaw, "A2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeSharedString, idType)

	revenueType, err := f.GetCellType(SheetSalesRaw, "B2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, revenueType)
	assert.NotEqual(t, excelize.CellTypeInlineString, revenueType)

	value, err := f.GetCellValue(SheetSalesRaw, "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.56", value)
}

func TestBuildSheets(t *testing.T) {
	raw := domain.RawTable{Header: []string{"N.º de venda"}}
	for i := 0; i < 15; i++ {
		raw.Rows = append(raw.Rows, []string{fmt.Sprintf("%d", i)})
	}
	ds := &domain.Dataset{SalesRaw: raw, ReturnsRawA: raw}

	sheets := BuildSheets(ds, sampleOverview(), 10)

	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{SheetSummary, SheetQuality, SheetWindows, SheetChannels, SheetSKUs, SheetSalesRaw, SheetReturnsRaw}, names)
	assert.Len(t, sheets[5].Rows, 10)
	assert.Len(t, sheets[6].Rows, 10)
	assert.Equal(t, []any{"Total de Vendas", "7.857"}, sheets[0].Rows[0])
}

func TestExportService_Export(t *testing.T) {
	ds := &domain.Dataset{SalesRaw: domain.RawTable{Header: []string{"SKU"}, Rows: [][]string{{"A"}}}}

	t.Run("grava o xlsx", func(t *testing.T) {
		var buf bytes.Buffer
		svc := NewExportService(0)

		require.NoError(t, svc.Export(context.Background(), &buf, ds, sampleOverview()))

		wb, err := spreadsheet.Open("relatorio.xlsx", bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer wb.Close()
		assert.Equal(t, []string{SheetSummary, SheetQuality, SheetWindows, SheetChannels, SheetSKUs, SheetSalesRaw, SheetReturnsRaw}, wb.SheetNames())
	})

	t.Run("sem análise", func(t *testing.T) {
		err := NewExportService(10).Export(context.Background(), io.Discard, nil, nil)
		assert.True(t, errors.Is(err, ErrNothingToExport))

		var exportErr *ExportError
		require.True(t, errors.As(err, &exportErr))
		assert.Equal(t, apiErrors.ErrSessionNotReady, exportErr.Code)
	})

	t.Run("falha na escrita", func(t *testing.T) {
		svc := &ExportService{
			sampleRows: 10,
			now:        time.Now,
			write: func(w io.Writer, sheets []spreadsheet.Sheet) error {
				return errors.New("disco cheio")
			},
		}
		err := svc.Export(context.Background(), io.Discard, ds, sampleOverview())
		assert.True(t, errors.Is(err, ErrWriteReport))
		assert.Contains(t, err.Error(), "disco cheio")
	})
}

func TestExportService_FileName(t *testing.T) {
	svc := &ExportService{now: func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }}

	name := svc.FileName()

	assert.True(t, strings.HasPrefix(name, "relatorio_devolucoes_20260301_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.NotEqual(t, name, svc.FileName())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteText(&buf, sampleOverview()))

	out := buf.String()
	assert.Contains(t, out, "== Resumo ==")
	assert.Contains(t, out, "-R$ 52.446,24")
	assert.Contains(t, out, "28/08/2025 a 24/02/2026 (180 dias)")
	assert.Contains(t, out, "(sem dados)")
	assert.Contains(t, out, "Período (dias)")
	assert.Regexp(t, `(?m)^\s*30\s+`, out)
	assert.NotContains(t, out, "\t")
}

func TestSimulationText(t *testing.T) {
	sim := &domain.Simulation{
		ReductionPct: 25,
		TotalSales:   100,
		Current:      domain.Scenario{Returns: 10, RatePct: 10, Impact: decimal.RequireFromString("-550")},
		Simulated:    domain.Scenario{Returns: 7, RatePct: 7, Impact: decimal.RequireFromString("-412.5")},
		Savings:      decimal.RequireFromString("137.5"),
	}

	rows := SimulationRows(*sim)
	assert.Equal(t, "25.0%", rowValue(rows, "Redução Simulada"))
	assert.Equal(t, "7", rowValue(rows, "Devoluções Simuladas"))
	assert.Equal(t, "-R$ 412,50", rowValue(rows, "Impacto Simulado"))
	assert.Equal(t, "R$ 137,50", rowValue(rows, "Economia"))

	var buf bytes.Buffer
	require.NoError(t, WriteSimulationText(&buf, sim))
	assert.Contains(t, buf.String(), "== Simulação ==")
	assert.Contains(t, buf.String(), "R$ 137,50")
}
