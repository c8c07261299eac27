package handler

import (
	"net/http"

	"github.com/vfg2006/returns-insights-api/internal/api/handler/router"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Session(store session.Store, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session/upload",
			Method:  http.MethodPost,
			Handler: UploadDataset(store, maxUploadBytes),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(store),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodDelete,
			Handler: ResetSession(store),
		},
	}
}

// Analysis retorna as rotas que dependem de planilhas carregadas
func Analysis(analyzer analyzing.Analyzer, store session.Store, defaults domain.Filters) []router.Route {
	withSession := []func(http.Handler) http.Handler{middleware.RequireSession(store)}

	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/metrics/windows",
			Method:      http.MethodGet,
			Handler:     GetWindows(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/metrics/channels",
			Method:      http.MethodGet,
			Handler:     GetChannels(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/analysis/shipping",
			Method:      http.MethodGet,
			Handler:     GetShipping(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/analysis/reasons",
			Method:      http.MethodGet,
			Handler:     GetReasons(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/analysis/ads",
			Method:      http.MethodGet,
			Handler:     GetAds(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/analysis/skus",
			Method:      http.MethodGet,
			Handler:     GetSKUs(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/analysis/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/simulation",
			Method:      http.MethodGet,
			Handler:     GetSimulation(analyzer, defaults),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/quality",
			Method:      http.MethodGet,
			Handler:     GetQuality(analyzer),
			Middlewares: withSession,
		},
	}
}

func Export(analyzer analyzing.Analyzer, exporter reporting.Exporter, store session.Store, defaults domain.Filters) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(analyzer, exporter, defaults),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession(store)},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
