package analyzing

import "github.com/vfg2006/returns-insights-api/internal/domain"

// WindowSeries calcula as métricas para cada janela aceita, mantendo os demais filtros
func WindowSeries(ds *domain.Dataset, f domain.Filters, opts MetricsOptions) []domain.WindowMetrics {
	series := make([]domain.WindowMetrics, 0, len(domain.WindowOptions))
	for _, days := range domain.WindowOptions {
		wf := f
		wf.WindowDays = days
		view := ApplyFilters(ds, wf)
		series = append(series, domain.WindowMetrics{
			WindowDays: days,
			Metrics:    ComputeMetrics(view.Sales, view.Index, opts),
		})
	}
	return series
}
