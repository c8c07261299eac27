package analyzing

import "github.com/vfg2006/returns-insights-api/internal/domain"

var comparedChannels = []struct {
	channel domain.Channel
	filter  domain.ChannelFilter
}{
	{domain.ChannelA, domain.ChannelOnlyA},
	{domain.ChannelB, domain.ChannelOnlyB},
}

// CompareChannels calcula as métricas considerando só as devoluções de cada canal.
// O filtro de canal recebido é ignorado; os demais são mantidos.
func CompareChannels(ds *domain.Dataset, f domain.Filters, opts MetricsOptions) []domain.ChannelMetrics {
	out := make([]domain.ChannelMetrics, 0, len(comparedChannels))
	for _, c := range comparedChannels {
		cf := f
		cf.Channel = c.filter
		view := ApplyFilters(ds, cf)
		out = append(out, domain.ChannelMetrics{
			Channel:       c.channel,
			Label:         c.channel.Label(),
			ReturnRecords: len(view.Returns),
			Metrics:       ComputeMetrics(view.Sales, view.Index, opts),
		})
	}
	return out
}
