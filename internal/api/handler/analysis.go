package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/middleware"
)

// analysisFunc é uma visão calculada sobre o dataset da sessão
type analysisFunc func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error)

// analysisHandler faz o trabalho comum das rotas de análise: recupera o dataset,
// lê os filtros e responde em JSON.
func analysisHandler(defaults domain.Filters, fn analysisFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, ok := middleware.DatasetFromContext(r.Context())
		if !ok {
			handleError(w, r, session.NewSessionError(session.ErrNotReady, apiErrors.ErrSessionNotReady, ""))
			return
		}

		f, err := parseFilters(r.URL.Query(), defaults)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		result, err := fn(r.Context(), ds, f)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetMetrics(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Metrics(ctx, ds, f)
	})
}

func GetWindows(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Windows(ctx, ds, f)
	})
}

func GetChannels(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Channels(ctx, ds, f)
	})
}

func GetShipping(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Shipping(ctx, ds, f)
	})
}

func GetAds(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Ads(ctx, ds, f)
	})
}

func GetReasons(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Reasons(ctx, ds, f)
	})
}

// GetSKUs aceita além dos filtros comuns sort=returns|rate|loss|risk e top=N
func GetSKUs(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseSKUQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
			return analyzer.SKUs(ctx, ds, f, query)
		})(w, r)
	}
}

// GetSimulation projeta a redução informada em reduction (0 a 100)
func GetSimulation(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reduction, err := parseReduction(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
			return analyzer.Simulate(ctx, ds, f, reduction)
		})(w, r)
	}
}

// GetQuality ignora os filtros: a qualidade é medida sobre os arquivos inteiros
func GetQuality(analyzer analyzing.Analyzer) http.HandlerFunc {
	return analysisHandler(domain.DefaultFilters(), func(ctx context.Context, ds *domain.Dataset, _ domain.Filters) (any, error) {
		return analyzer.Quality(ctx, ds)
	})
}

func GetOverview(analyzer analyzing.Analyzer, defaults domain.Filters) http.HandlerFunc {
	return analysisHandler(defaults, func(ctx context.Context, ds *domain.Dataset, f domain.Filters) (any, error) {
		return analyzer.Overview(ctx, ds, f)
	})
}
