package spreadsheet

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Sheet é uma aba do relatório exportado
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// WriteWorkbook grava as abas em um novo arquivo xlsx
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return errors.New("nenhuma aba para exportar")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, sheet.Name); err != nil {
				return errors.Wrapf(err, "erro ao renomear aba %q", sheet.Name)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return errors.Wrapf(err, "erro ao criar aba %q", sheet.Name)
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "erro ao gravar o arquivo xlsx")
	}

	return nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}

	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return errors.Wrapf(err, "erro ao escrever cabeçalho da aba %q", sheet.Name)
	}

	if len(sheet.Header) > 0 {
		if err := f.SetRowStyle(sheet.Name, 1, 1, headerStyle); err != nil {
			return errors.Wrapf(err, "erro ao aplicar estilo na aba %q", sheet.Name)
		}

		lastCol, err := excelize.ColumnNumberToName(len(sheet.Header))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, "A", lastCol, 22); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		cells := make([]any, len(row))
		for c, value := range row {
			cells[c] = cellValue(value)
		}

		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &cells); err != nil {
			return errors.Wrapf(err, "erro ao escrever linha %d da aba %q", r+2, sheet.Name)
		}
	}

	return nil
}

func cellValue(value any) any {
	switch v := value.(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("2006-01-02 15:04")
	case time.Time:
		return v.Format("2006-01-02 15:04")
	default:
		return v
	}
}
