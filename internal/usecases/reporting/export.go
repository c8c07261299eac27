package reporting

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/log"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

//go:generate mockgen -source=export.go -destination=mocks/mock_exporter.go -package=mocks

const DefaultSampleRows = 1000

// Nomes das abas do relatório
const (
	SheetSummary    = "Resumo"
	SheetQuality    = "Qualidade"
	SheetWindows    = "Janelas"
	SheetChannels   = "Canais"
	SheetSKUs       = "SKUs"
	SheetSalesRaw   = "Vendas_Brutos"
	SheetReturnsRaw = "Devolucoes_Brutos"
)

// Exporter grava o relatório xlsx de uma análise
type Exporter interface {
	Export(ctx context.Context, w io.Writer, ds *domain.Dataset, overview *domain.Overview) error
	FileName() string
}

type ExportService struct {
	sampleRows int
	write      func(w io.Writer, sheets []spreadsheet.Sheet) error
	now        func() time.Time
}

func NewExportService(sampleRows int) Exporter {
	if sampleRows <= 0 {
		sampleRows = DefaultSampleRows
	}
	return &ExportService{
		sampleRows: sampleRows,
		write:      spreadsheet.WriteWorkbook,
		now:        time.Now,
	}
}

func (s *ExportService) Export(ctx context.Context, w io.Writer, ds *domain.Dataset, overview *domain.Overview) error {
	if ds == nil || overview == nil {
		return NewExportError(ErrNothingToExport, "")
	}

	sheets := BuildSheets(ds, overview, s.sampleRows)
	if err := s.write(w, sheets); err != nil {
		log.ForContext(ctx).WithError(err).Error("export: falha ao gravar relatório")
		return NewExportError(ErrWriteReport, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sheets":      len(sheets),
		"rows_sales":  len(ds.Sales),
		"sample_rows": s.sampleRows,
	}).Info("export: relatório gerado")

	return nil
}

// FileName gera um nome único para o arquivo exportado
func (s *ExportService) FileName() string {
	id, err := utils.GenerateID()
	if err != nil {
		id = fmt.Sprintf("%d", s.now().Unix())
	}
	return fmt.Sprintf("relatorio_devolucoes_%s_%s.xlsx", s.now().Format("20060102"), id)
}

// BuildSheets monta as abas do relatório a partir da visão calculada e das amostras brutas
func BuildSheets(ds *domain.Dataset, overview *domain.Overview, sampleRows int) []spreadsheet.Sheet {
	return []spreadsheet.Sheet{
		rowsSheet(SheetSummary, SummaryRows(overview.Metrics)),
		rowsSheet(SheetQuality, QualityRows(overview.Quality)),
		tableSheet(SheetWindows, WindowTable(overview.Windows)),
		tableSheet(SheetChannels, ChannelTable(overview.Channels)),
		tableSheet(SheetSKUs, SKUTable(overview.SKUs)),
		rawSheet(SheetSalesRaw, sampleTable(ds.SalesRaw, sampleRows)),
		rawSheet(SheetReturnsRaw, sampleTable(mergeRawTables(ds.ReturnsRawA, ds.ReturnsRawB), sampleRows)),
	}
}

func rowsSheet(name string, rows []Row) spreadsheet.Sheet {
	sheet := spreadsheet.Sheet{
		Name:   name,
		Header: []string{"Métrica", "Valor"},
		Rows:   make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{r.Label, r.Value})
	}
	return sheet
}

func tableSheet(name string, t Table) spreadsheet.Sheet {
	sheet := spreadsheet.Sheet{
		Name:   name,
		Header: t.Header,
		Rows:   make([][]any, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		sheet.Rows = append(sheet.Rows, toAny(row))
	}
	return sheet
}

// rawSheet grava as colunas convertidas como número, para o Excel não tratá-las como texto
func rawSheet(name string, t domain.RawTable) spreadsheet.Sheet {
	sheet := spreadsheet.Sheet{
		Name:   name,
		Header: t.Header,
		Rows:   make([][]any, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		out := toAny(row)
		for i, v := range row {
			if !t.IsNumeric(i) || v == "" {
				continue
			}
			if d, err := decimal.NewFromString(v); err == nil {
				out[i] = d
			}
		}
		sheet.Rows = append(sheet.Rows, out)
	}
	return sheet
}

func toAny(row []string) []any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func sampleTable(t domain.RawTable, limit int) domain.RawTable {
	if len(t.Rows) <= limit {
		return t
	}
	return domain.RawTable{Header: t.Header, Rows: t.Rows[:limit], Numeric: t.Numeric}
}

// mergeRawTables concatena as abas de devolução, unindo as colunas pelo nome
func mergeRawTables(tables ...domain.RawTable) domain.RawTable {
	position := make(map[string]int)
	var header []string
	var numeric []bool
	for _, t := range tables {
		for i, h := range t.Header {
			if _, ok := position[h]; !ok {
				position[h] = len(header)
				header = append(header, h)
				numeric = append(numeric, false)
			}
			if t.IsNumeric(i) {
				numeric[position[h]] = true
			}
		}
	}

	var rows [][]string
	for _, t := range tables {
		for _, row := range t.Rows {
			out := make([]string, len(header))
			for i, h := range t.Header {
				if i < len(row) {
					out[position[h]] = row[i]
				}
			}
			rows = append(rows, out)
		}
	}

	return domain.RawTable{Header: header, Rows: rows, Numeric: numeric}
}
