package ingesting

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-insights-api/infrastructure/spreadsheet"
	"github.com/vfg2006/returns-insights-api/internal/domain"
)

type salesTable struct {
	records []domain.SaleRecord
	columns domain.SalesColumns
	raw     domain.RawTable
}

func readSales(wb spreadsheet.Workbook) (*salesTable, error) {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	sheet := selectSalesSheet(sheets)
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "aba %q", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptySheet, "aba %q", sheet)
	}

	header, data := splitTable(rows, findHeaderRow(rows, salesHeaderKeys))
	cols := resolveColumns(header, salesColumns)

	table := &salesTable{
		records: make([]domain.SaleRecord, 0, len(data)),
		columns: domain.SalesColumns{
			OrderID:         cols.has(ColOrderID),
			SaleDate:        cols.has(ColSaleDate),
			SKU:             cols.has(ColSKU),
			Units:           cols.has(ColUnits),
			ProductRevenue:  cols.has(ColProductRevenue),
			ShippingRevenue: cols.has(ColShippingRevenue),
			ShippingMethod:  cols.has(ColShippingMethod),
			Advertised:      cols.has(ColAdvertised),
		},
		raw: buildRawTable(header, data, salesNumericMarkers),
	}

	for _, row := range data {
		table.records = append(table.records, toSaleRecord(row, cols))
	}

	return table, nil
}

func toSaleRecord(row []string, cols columnIndex) domain.SaleRecord {
	revenue, revenueOK := parseNumber(cols.value(row, ColProductRevenue))

	rec := domain.SaleRecord{
		OrderID:         normalizeOrderID(cols.value(row, ColOrderID)),
		SKU:             cols.value(row, ColSKU),
		Units:           parseUnits(cols.value(row, ColUnits)),
		ProductRevenue:  revenue,
		ShippingRevenue: parseMoney(cols.value(row, ColShippingRevenue)),
		RevenueMissing:  !revenueOK,
		ShippingMethod:  cols.value(row, ColShippingMethod),
		Advertised:      cols.value(row, ColAdvertised) == advertisedValue,
	}

	if cols.has(ColSaleDate) {
		rec.SaleDate = ParseSaleDate(cols.value(row, ColSaleDate))
	}

	return rec
}

// buildRawTable guarda as linhas originais, com as colunas numéricas já convertidas
func buildRawTable(header []string, data [][]string, markers []string) domain.RawTable {
	numeric := make([]bool, len(header))
	for i, h := range header {
		numeric[i] = hasMarker(h, markers)
	}

	rows := make([][]string, 0, len(data))
	for _, row := range data {
		out := make([]string, len(header))
		for i := range header {
			if i >= len(row) {
				if numeric[i] {
					out[i] = "0"
				}
				continue
			}
			if numeric[i] {
				out[i] = parseMoney(row[i]).String()
			} else {
				out[i] = row[i]
			}
		}
		rows = append(rows, out)
	}

	return domain.RawTable{Header: header, Rows: rows, Numeric: numeric}
}
