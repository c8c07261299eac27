package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/returns-insights-api/internal/config"
	"github.com/vfg2006/returns-insights-api/pkg/log"
)

var (
	rootCmd = &cobra.Command{
		Use:   "returns-insights",
		Short: "Análise de devoluções a partir das planilhas de vendas e devoluções",
		RunE:  serve,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão do serviço",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	version = "dev"
)

func main() {
	log.Configure("info")

	rootCmd.AddCommand(serveCmd, reportCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Erro ao executar comando")
		os.Exit(1)
	}
}

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Debugf("Nível de log configurado para: %s", logLevel)

	return cfg, nil
}
