package analyzing

import (
	"sort"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/pkg/utils"
)

// AnalyzeReasons conta as devoluções da visão por motivo, já com o motivo inferido quando vazio
func AnalyzeReasons(view FilteredView) []domain.ReasonRow {
	if !view.HasReasonField || len(view.Returns) == 0 {
		return []domain.ReasonRow{}
	}

	counts := make(map[string]int)
	for _, rec := range view.Returns {
		counts[truncateLabel(DeriveReason(rec))]++
	}

	total := len(view.Returns)
	rows := make([]domain.ReasonRow, 0, len(counts))
	for reason, count := range counts {
		rows = append(rows, domain.ReasonRow{
			Reason:  reason,
			Count:   count,
			Percent: utils.RoundWithOneDecimalPlace(utils.Percentage(count, total)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Reason < rows[j].Reason
	})

	return rows
}
