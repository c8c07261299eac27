package spreadsheet

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shakinm/xlsReader/xls"
)

// xlsWorkbook carrega todas as abas na abertura, pois a biblioteca só lê a partir de arquivo
type xlsWorkbook struct {
	names  []string
	sheets map[string][][]string
}

func openXLS(data []byte) (Workbook, error) {
	tempFile, err := os.CreateTemp("", "upload-*.xls")
	if err != nil {
		return nil, errors.Wrap(err, "falha ao criar arquivo temporário")
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return nil, errors.Wrap(err, "falha ao escrever no arquivo temporário")
	}
	tempFile.Close()

	workbook, err := xls.OpenFile(tempFile.Name())
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir o arquivo .xls")
	}

	wb := &xlsWorkbook{sheets: make(map[string][][]string)}
	for sheetIndex := 0; sheetIndex < workbook.GetNumberSheets(); sheetIndex++ {
		sheet, err := workbook.GetSheet(sheetIndex)
		if err != nil || sheet == nil {
			continue
		}

		var rows [][]string
		for i := 0; i <= int(sheet.GetNumberRows()); i++ {
			row, err := sheet.GetRow(i)
			if err != nil || row == nil {
				rows = append(rows, nil)
				continue
			}

			var cells []string
			for _, col := range row.GetCols() {
				if col != nil {
					cells = append(cells, col.GetString())
				} else {
					cells = append(cells, "")
				}
			}
			rows = append(rows, cells)
		}

		name := sheet.GetName()
		wb.names = append(wb.names, name)
		wb.sheets[name] = trimTrailingEmptyRows(rows)
	}

	return wb, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	return w.names
}

func (w *xlsWorkbook) Rows(sheet string) ([][]string, error) {
	rows, ok := w.sheets[sheet]
	if !ok {
		return nil, errors.Wrapf(ErrSheetNotFound, "aba %q", sheet)
	}
	return rows, nil
}

func (w *xlsWorkbook) Close() error {
	return nil
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isEmptyRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
