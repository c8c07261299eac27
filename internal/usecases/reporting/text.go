package reporting

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

// WriteText escreve o relatório em tabelas alinhadas, usado pelo comando report
func WriteText(w io.Writer, overview *domain.Overview) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Período: %s a %s (%d dias)\n",
		overview.WindowStart.Format("02/01/2006"),
		overview.ReferenceDate.Format("02/01/2006"),
		overview.Filters.WindowDays,
	)
	fmt.Fprintf(&buf, "Arquivos: %s / %s\n", overview.Counts.SalesFileName, overview.Counts.ReturnsFileName)

	writeRows(&buf, "Resumo", SummaryRows(overview.Metrics))
	writeTable(&buf, "Janelas", WindowTable(overview.Windows))
	writeTable(&buf, "Canais", ChannelTable(overview.Channels))
	writeTable(&buf, "Forma de entrega", ShippingTable(overview.Shipping))
	writeTable(&buf, "Publicidade", AdsTable(overview.Ads))
	writeTable(&buf, "Motivos", ReasonTable(overview.Reasons))
	writeTable(&buf, "SKUs", SKUTable(overview.SKUs))
	writeRows(&buf, "Qualidade", QualityRows(overview.Quality))

	_, err := w.Write(buf.Bytes())
	return err
}

// WriteSimulationText escreve o cenário simulado no mesmo formato do relatório
func WriteSimulationText(w io.Writer, sim *domain.Simulation) error {
	var buf bytes.Buffer
	writeRows(&buf, "Simulação", SimulationRows(*sim))

	_, err := w.Write(buf.Bytes())
	return err
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func writeRows(w io.Writer, title string, rows []Row) {
	writeSection(w, title)

	table := newTextTable(w)
	for _, r := range rows {
		table.Append([]string{r.Label, r.Value})
	}
	table.Render()
}

func writeTable(w io.Writer, title string, t Table) {
	writeSection(w, title)
	if len(t.Rows) == 0 {
		fmt.Fprintln(w, "(sem dados)")
		return
	}

	table := newTextTable(w)
	table.SetHeader(t.Header)
	table.AppendBulk(t.Rows)
	table.Render()
}

// newTextTable configura a tabela sem bordas, com colunas separadas por espaços
func newTextTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
