package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// parseFilters lê os filtros comuns da query string partindo dos padrões configurados.
// Os valores só são validados pelo serviço de análise.
func parseFilters(q url.Values, defaults domain.Filters) (domain.Filters, error) {
	f := defaults

	if v := q.Get("window"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("janela inválida: %s", v)
		}
		f.WindowDays = days
	}

	if v := q.Get("channel"); v != "" {
		f.Channel = parseChannel(v)
	}

	if v := q.Get("ads_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("ads_only inválido: %s", v)
		}
		f.AdsOnly = b
	}

	if v := q.Get("top_skus"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("top_skus inválido: %s", v)
		}
		f.TopSKUs = b
	}

	if v := q.Get("top_sku_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("top_sku_count inválido: %s", v)
		}
		f.TopSKUCount = n
	}

	date, err := utils.ParseDate(q.Get("reference_date"))
	if err != nil {
		return f, fmt.Errorf("reference_date deve estar no formato AAAA-MM-DD")
	}
	if date != nil {
		end := utils.EndOfDay(*date)
		f.ReferenceDate = &end
	}

	return f, nil
}

// parseChannel aceita o código do canal ou o nome usado nos relatórios
func parseChannel(v string) domain.ChannelFilter {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "all", "todos", "ambos":
		return domain.ChannelAll
	case "a", "matriz":
		return domain.ChannelOnlyA
	case "b", "full":
		return domain.ChannelOnlyB
	default:
		return domain.ChannelFilter(v)
	}
}

func parseSKUQuery(q url.Values) (analyzing.SKUQuery, error) {
	query := analyzing.SKUQuery{Sort: domain.SKUSortReturns}

	if v := q.Get("sort"); v != "" {
		switch s := domain.SKUSort(strings.ToLower(v)); s {
		case domain.SKUSortReturns, domain.SKUSortRate, domain.SKUSortLoss, domain.SKUSortRisk:
			query.Sort = s
		default:
			return query, fmt.Errorf("ordenação inválida: %s", v)
		}
	}

	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return query, fmt.Errorf("top inválido: %s", v)
		}
		query.Top = n
	}

	return query, nil
}

func parseReduction(q url.Values) (float64, error) {
	v := q.Get("reduction")
	if v == "" {
		return 0, fmt.Errorf("parâmetro reduction é obrigatório")
	}
	r, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("reduction inválido: %s", v)
	}
	return r, nil
}
