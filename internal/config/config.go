package config

import (
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Upload        Upload        `mapstructure:",squash"`
	Analysis      Analysis      `mapstructure:",squash"`
	Export        Export        `mapstructure:",squash"`
	SessionReaper SessionReaper `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Upload struct {
	MaxBytes int64 `mapstructure:"upload_max_bytes"`
}

type Analysis struct {
	PartialLossStrategy   string  `mapstructure:"partial_loss_strategy"`
	PartialLossRatio      float64 `mapstructure:"partial_loss_ratio"`
	ShippingFallbackLabel string  `mapstructure:"shipping_fallback_label"`
	DefaultWindowDays     int     `mapstructure:"default_window_days"`
	TopSKUCount           int     `mapstructure:"top_sku_count"`
}

type Export struct {
	SampleRows int `mapstructure:"export_sample_rows"`
}

type SessionReaper struct {
	CronSchedule string        `mapstructure:"session_reaper_cron"`
	IdleTTL      time.Duration `mapstructure:"session_idle_ttl"`
	Enabled      bool          `mapstructure:"session_reaper_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("UPLOAD_MAX_BYTES", 50<<20) // 50 MB por requisição

	viper.SetDefault("PARTIAL_LOSS_STRATEGY", string(domain.PartialLossShippingCost))
	viper.SetDefault("PARTIAL_LOSS_RATIO", domain.DefaultPartialLossRatio)
	viper.SetDefault("SHIPPING_FALLBACK_LABEL", analyzing.DefaultShippingFallbackLabel)
	viper.SetDefault("DEFAULT_WINDOW_DAYS", domain.DefaultWindowDays)
	viper.SetDefault("TOP_SKU_COUNT", domain.DefaultTopSKUCount)

	viper.SetDefault("EXPORT_SAMPLE_ROWS", 1000)

	// Limpeza de sessões ociosas
	viper.SetDefault("SESSION_REAPER_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("SESSION_IDLE_TTL", "2h")
	viper.SetDefault("SESSION_REAPER_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere os valores que alteram o resultado das análises
func (c *Config) Validate() error {
	windows := make([]interface{}, 0, len(domain.WindowOptions))
	for _, w := range domain.WindowOptions {
		windows = append(windows, w)
	}

	return validation.ValidateStruct(&c.Analysis,
		validation.Field(&c.Analysis.PartialLossStrategy, validation.In(
			string(domain.PartialLossShippingCost),
			string(domain.PartialLossRefundRatio),
		)),
		validation.Field(&c.Analysis.PartialLossRatio, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.Analysis.DefaultWindowDays, validation.In(windows...)),
		validation.Field(&c.Analysis.TopSKUCount, validation.Min(1)),
	)
}

// AnalyzerOptions monta as opções do serviço de análise
func (c *Config) AnalyzerOptions() analyzing.Options {
	opts := analyzing.DefaultOptions()
	if c.Analysis.PartialLossStrategy != "" {
		opts.Metrics.PartialLoss = domain.PartialLossStrategy(c.Analysis.PartialLossStrategy)
	}
	if c.Analysis.PartialLossRatio > 0 {
		opts.Metrics.PartialLossRatio = c.Analysis.PartialLossRatio
	}
	if c.Analysis.ShippingFallbackLabel != "" {
		opts.ShippingFallbackLabel = c.Analysis.ShippingFallbackLabel
	}
	return opts
}

// DefaultFilters retorna os filtros usados quando a requisição não informa nenhum
func (c *Config) DefaultFilters() domain.Filters {
	f := domain.DefaultFilters()
	if c.Analysis.DefaultWindowDays > 0 {
		f.WindowDays = c.Analysis.DefaultWindowDays
	}
	if c.Analysis.TopSKUCount > 0 {
		f.TopSKUCount = c.Analysis.TopSKUCount
	}
	return f
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
