package ingesting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

type returnsTable struct {
	records []domain.ReturnRecord
	columns domain.ReturnColumns
	raw     domain.RawTable
}

type returnsTables struct {
	channelA returnsTable
	channelB returnsTable
}

func readReturns(wb spreadsheet.Workbook) (*returnsTables, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	matriz, full := selectReturnSheets(sheets)

	tables := &returnsTables{}
	if matriz != "" {
		table, err := readReturnSheet(wb, matriz, domain.ChannelA)
		if err != nil {
			return nil, err
		}
		tables.channelA = *table
	}
	if full != "" {
		table, err := readReturnSheet(wb, full, domain.ChannelB)
		if err != nil {
			return nil, err
		}
		tables.channelB = *table
	}

	return tables, nil
}

// readReturnSheet lê uma aba de devoluções; aba vazia resulta em canal sem registros
func readReturnSheet(wb spreadsheet.Workbook, sheet string, channel domain.Channel) (*returnsTable, error) {
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "aba %q", sheet)
	}
	if len(rows) == 0 {
		return &returnsTable{}, nil
	}

	header, data := splitTable(rows, findHeaderRow(rows, returnsHeaderKeys))
	cols := resolveColumns(header, returnColumns)

	table := &returnsTable{
		records: make([]domain.ReturnRecord, 0, len(data)),
		columns: domain.ReturnColumns{
			OrderID:            cols.has(ColOrderID),
			State:              cols.has(ColState),
			Status:             cols.has(ColStatus),
			Reason:             cols.has(ColReason),
			RefundAmount:       cols.has(ColRefund),
			ReturnShippingCost: cols.has(ColReturnShippingCost),
			ProductRevenue:     cols.has(ColProductRevenue),
			LogisticCost:       cols.has(ColLogisticCost),
		},
		raw: buildRawTable(header, data, returnsNumericMarkers),
	}

	for _, row := range data {
		logistic, logisticOK := parseNumber(cols.value(row, ColLogisticCost))

		table.records = append(table.records, domain.ReturnRecord{
			OrderID:            normalizeOrderID(cols.value(row, ColOrderID)),
			Channel:            channel,
			State:              cols.value(row, ColState),
			Status:             cols.value(row, ColStatus),
			Reason:             cols.value(row, ColReason),
			RefundAmount:       parseMoney(cols.value(row, ColRefund)),
			ReturnShippingCost: parseMoney(cols.value(row, ColReturnShippingCost)),
			ProductRevenue:     parseMoney(cols.value(row, ColProductRevenue)),
			HasLogisticCost:    logisticOK && !logistic.IsZero(),
		})
	}

	return table, nil
}
