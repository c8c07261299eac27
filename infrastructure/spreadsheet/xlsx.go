package spreadsheet

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	file *excelize.File
}

func openXLSX(data []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir o arquivo .xlsx")
	}

	return &xlsxWorkbook{file: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *xlsxWorkbook) Rows(sheet string) ([][]string, error) {
	if idx, err := w.file.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "aba %q", sheet)
	}

	// valores crus: o texto formatado perde dígitos de números de venda longos e troca separadores
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler a aba %q", sheet)
	}

	return rows, nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}
