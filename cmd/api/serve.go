package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/returns-insights-api/internal/api"
	"github.com/vfg2006/returns-insights-api/internal/api/handler"
	"github.com/vfg2006/returns-insights-api/internal/scheduler"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia a API HTTP",
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := session.NewStore(ingesting.NewService())
	analyzer := analyzing.NewService(cfg.AnalyzerOptions())
	exporter := reporting.NewExportService(cfg.Export.SampleRows)

	sessionReaper := scheduler.NewSessionReaperService(store, cfg)
	if err := sessionReaper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, store, analyzer, exporter, handler.CronJobServices{
		handler.CronJobTypeSessionReaper: sessionReaper,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
