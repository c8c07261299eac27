package analyzing

import (
	"context"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_analyzer.go -package=mocks

// Analyzer expõe as visões calculadas sobre um dataset carregado
type Analyzer interface {
	Metrics(ctx context.Context, ds *domain.Dataset, f domain.Filters) (*domain.MetricsBundle, error)
	Windows(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.WindowMetrics, error)
	Channels(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ChannelMetrics, error)
	Shipping(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ShippingRow, error)
	Ads(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.AdsRow, error)
	Reasons(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ReasonRow, error)
	SKUs(ctx context.Context, ds *domain.Dataset, f domain.Filters, query SKUQuery) (*domain.SKUReport, error)
	Simulate(ctx context.Context, ds *domain.Dataset, f domain.Filters, reductionPct float64) (*domain.Simulation, error)
	Quality(ctx context.Context, ds *domain.Dataset) (*domain.QualityReport, error)
	Overview(ctx context.Context, ds *domain.Dataset, f domain.Filters) (*domain.Overview, error)
}

// Options são as políticas configuráveis da análise
type Options struct {
	Metrics               MetricsOptions
	ShippingFallbackLabel string
}

func DefaultOptions() Options {
	return Options{
		Metrics:               DefaultMetricsOptions(),
		ShippingFallbackLabel: DefaultShippingFallbackLabel,
	}
}

type Service struct {
	opts Options
}

func NewService(opts Options) Analyzer {
	return &Service{opts: opts}
}

// view valida os filtros e monta a visão filtrada
func (s *Service) view(ctx context.Context, ds *domain.Dataset, f domain.Filters) (FilteredView, error) {
	if ds == nil {
		return FilteredView{}, NewAnalysisError(ErrNilDataset, "")
	}
	if err := f.Validate(); err != nil {
		return FilteredView{}, NewAnalysisError(ErrInvalidFilters, err.Error())
	}

	view := ApplyFilters(ds, f)

	log.ForContext(ctx).WithFields(log.Fields{
		"window_days":    f.WindowDays,
		"channel":        f.Channel,
		"ads_only":       f.AdsOnly,
		"top_skus":       f.TopSKUs,
		"rows_sales":     len(view.Sales),
		"rows_returns":   len(view.Returns),
		"reference_date": view.ReferenceDate.Format("2006-01-02"),
	}).Debug("análise: visão filtrada montada")

	return view, nil
}

func (s *Service) Metrics(ctx context.Context, ds *domain.Dataset, f domain.Filters) (*domain.MetricsBundle, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}

	bundle := ComputeMetrics(view.Sales, view.Index, s.opts.Metrics)
	return &bundle, nil
}

func (s *Service) Windows(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.WindowMetrics, error) {
	if _, err := s.view(ctx, ds, f); err != nil {
		return nil, err
	}
	return WindowSeries(ds, f, s.opts.Metrics), nil
}

func (s *Service) Channels(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ChannelMetrics, error) {
	if _, err := s.view(ctx, ds, f); err != nil {
		return nil, err
	}
	return CompareChannels(ds, f, s.opts.Metrics), nil
}

func (s *Service) Shipping(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ShippingRow, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}
	return AnalyzeShipping(view, s.opts.ShippingFallbackLabel), nil
}

func (s *Service) Ads(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.AdsRow, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}
	return AnalyzeAds(view), nil
}

func (s *Service) Reasons(ctx context.Context, ds *domain.Dataset, f domain.Filters) ([]domain.ReasonRow, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}
	return AnalyzeReasons(view), nil
}

func (s *Service) SKUs(ctx context.Context, ds *domain.Dataset, f domain.Filters, query SKUQuery) (*domain.SKUReport, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}

	report := AnalyzeSKUs(view, query)
	return &report, nil
}

func (s *Service) Simulate(ctx context.Context, ds *domain.Dataset, f domain.Filters, reductionPct float64) (*domain.Simulation, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}

	sim, err := Simulate(ComputeMetrics(view.Sales, view.Index, s.opts.Metrics), reductionPct)
	if err != nil {
		return nil, err
	}
	return &sim, nil
}

func (s *Service) Quality(ctx context.Context, ds *domain.Dataset) (*domain.QualityReport, error) {
	if ds == nil {
		return nil, NewAnalysisError(ErrNilDataset, "")
	}

	report := AssessQuality(ds)
	return &report, nil
}

// Overview calcula todas as visões de uma vez sobre a mesma visão filtrada
func (s *Service) Overview(ctx context.Context, ds *domain.Dataset, f domain.Filters) (*domain.Overview, error) {
	view, err := s.view(ctx, ds, f)
	if err != nil {
		return nil, err
	}

	return &domain.Overview{
		Filters:       f,
		ReferenceDate: view.ReferenceDate,
		WindowStart:   view.WindowStart,
		Counts:        ds.Counts(),
		Metrics:       ComputeMetrics(view.Sales, view.Index, s.opts.Metrics),
		Windows:       WindowSeries(ds, f, s.opts.Metrics),
		Channels:      CompareChannels(ds, f, s.opts.Metrics),
		Shipping:      AnalyzeShipping(view, s.opts.ShippingFallbackLabel),
		Ads:           AnalyzeAds(view),
		Reasons:       AnalyzeReasons(view),
		SKUs:          AnalyzeSKUs(view, SKUQuery{Sort: domain.SKUSortReturns}),
		Quality:       AssessQuality(ds),
	}, nil
}
