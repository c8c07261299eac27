package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/returns-insights-api/internal/config"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

type reportFlags struct {
	sales         string
	returns       string
	window        int
	channel       string
	adsOnly       bool
	topSKUs       bool
	topSKUCount   int
	referenceDate string
	reduction     float64
	export        string
	asJSON        bool
}

var report reportFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Analisa as planilhas e imprime o relatório no terminal",
	Example: "  returns-insights report --sales vendas.xlsx --returns devolucoes.xlsx --window 90 --channel B\n" +
		"  returns-insights report --sales vendas.xlsx --returns devolucoes.xlsx --export relatorio.xlsx",
	RunE: runReport,
}

func init() {
	flags := reportCmd.Flags()
	flags.StringVar(&report.sales, "sales", "", "planilha de vendas (.xlsx, .xls ou .csv)")
	flags.StringVar(&report.returns, "returns", "", "planilha de devoluções com as abas Matriz e Full")
	flags.IntVar(&report.window, "window", 0, "janela em dias (30, 60, 90, 120, 150 ou 180)")
	flags.StringVar(&report.channel, "channel", string(domain.ChannelAll), "canal das devoluções: all, A (Matriz) ou B (Full)")
	flags.BoolVar(&report.adsOnly, "ads-only", false, "considera apenas vendas por publicidade")
	flags.BoolVar(&report.topSKUs, "top-skus", false, "restringe aos SKUs com mais devoluções")
	flags.IntVar(&report.topSKUCount, "top-sku-count", 0, "quantidade de SKUs usada por --top-skus")
	flags.StringVar(&report.referenceDate, "reference-date", "", "data de referência no formato AAAA-MM-DD")
	flags.Float64Var(&report.reduction, "reduction", 0, "simula uma redução percentual das devoluções")
	flags.StringVar(&report.export, "export", "", "grava o relatório xlsx neste caminho")
	flags.BoolVar(&report.asJSON, "json", false, "imprime o resultado em JSON")

	_ = reportCmd.MarkFlagRequired("sales")
	_ = reportCmd.MarkFlagRequired("returns")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	filters, err := report.filters(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	ds, err := loadDataset(ctx, report.sales, report.returns)
	if err != nil {
		return err
	}

	analyzer := analyzing.NewService(cfg.AnalyzerOptions())
	overview, err := analyzer.Overview(ctx, ds, filters)
	if err != nil {
		return err
	}

	var sim *domain.Simulation
	if cmd.Flags().Changed("reduction") {
		sim, err = analyzer.Simulate(ctx, ds, filters, report.reduction)
		if err != nil {
			return err
		}
	}

	if report.export != "" {
		if err := exportReport(ctx, reporting.NewExportService(cfg.Export.SampleRows), report.export, ds, overview); err != nil {
			return err
		}
	}

	return printReport(cmd.OutOrStdout(), overview, sim, report.asJSON)
}

func (f reportFlags) filters(cfg *config.Config) (domain.Filters, error) {
	filters := cfg.DefaultFilters()
	if f.window > 0 {
		filters.WindowDays = f.window
	}
	if f.channel != "" {
		filters.Channel = domain.ChannelFilter(strings.ToUpper(f.channel))
		if strings.EqualFold(f.channel, string(domain.ChannelAll)) {
			filters.Channel = domain.ChannelAll
		}
	}
	filters.AdsOnly = f.adsOnly
	filters.TopSKUs = f.topSKUs
	if f.topSKUCount > 0 {
		filters.TopSKUCount = f.topSKUCount
	}

	date, err := utils.ParseDate(f.referenceDate)
	if err != nil {
		return filters, errors.Wrap(err, "data de referência inválida")
	}
	if date != nil {
		end := utils.EndOfDay(*date)
		filters.ReferenceDate = &end
	}

	return filters, filters.Validate()
}

func loadDataset(ctx context.Context, salesPath, returnsPath string) (*domain.Dataset, error) {
	sales, err := os.Open(salesPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha de vendas")
	}
	defer sales.Close()

	returns, err := os.Open(returnsPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha de devoluções")
	}
	defer returns.Close()

	return ingesting.NewService().Load(ctx,
		ingesting.Upload{Name: filepath.Base(salesPath), Reader: sales},
		ingesting.Upload{Name: filepath.Base(returnsPath), Reader: returns},
	)
}

func exportReport(ctx context.Context, exporter reporting.Exporter, path string, ds *domain.Dataset, overview *domain.Overview) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo do relatório")
	}

	if err := exporter.Export(ctx, out, ds, overview); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo do relatório")
	}

	logrus.WithField("file_name", path).Info("Relatório xlsx gravado")
	return nil
}

func printReport(w io.Writer, overview *domain.Overview, sim *domain.Simulation, asJSON bool) error {
	if asJSON {
		out := map[string]any{"overview": overview}
		if sim != nil {
			out["simulation"] = sim
		}
		_, err := fmt.Fprintln(w, utils.PrettyJson(out))
		return err
	}

	if err := reporting.WriteText(w, overview); err != nil {
		return err
	}
	if sim != nil {
		return reporting.WriteSimulationText(w, sim)
	}
	return nil
}
