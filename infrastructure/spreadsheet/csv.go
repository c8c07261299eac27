package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// csvWorkbook representa um CSV como uma planilha de aba única, nomeada pelo arquivo
type csvWorkbook struct {
	name string
	rows [][]string
}

func openCSV(name string, data []byte) (Workbook, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var content []byte
	if utf8.Valid(data) {
		content = data
	} else {
		// Exportações antigas chegam em ISO-8859-1
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, errors.Wrap(err, "falha ao decodificar CSV em ISO-8859-1")
		}
		content = decoded
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = detectSeparator(content)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler o CSV")
	}

	sheetName := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if sheetName == "" || sheetName == "." {
		sheetName = "csv"
	}

	return &csvWorkbook{name: sheetName, rows: rows}, nil
}

func detectSeparator(content []byte) rune {
	firstLine := content
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	if bytes.Count(firstLine, []byte{';'}) >= bytes.Count(firstLine, []byte{','}) {
		return ';'
	}
	return ','
}

func (w *csvWorkbook) SheetNames() []string {
	return []string{w.name}
}

func (w *csvWorkbook) Rows(sheet string) ([][]string, error) {
	if sheet != w.name {
		return nil, errors.Wrapf(ErrSheetNotFound, "aba %q", sheet)
	}
	return w.rows, nil
}

func (w *csvWorkbook) Close() error {
	return nil
}
