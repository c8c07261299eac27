package spreadsheet

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -source=workbook.go -destination=mocks/mock_workbook.go -package=mocks

// Workbook expõe as abas de uma planilha como linhas de texto, independente do formato de origem
type Workbook interface {
	SheetNames() []string
	Rows(sheet string) ([][]string, error)
	Close() error
}

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat escolhe o formato pela extensão do arquivo e, na falta dela, pelo conteúdo
func DetectFormat(name string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	}

	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX, nil
	case bytes.HasPrefix(data, ole2Magic):
		return FormatXLS, nil
	case isText(data):
		return FormatCSV, nil
	}

	return "", errors.Wrapf(ErrUnsupportedFormat, "arquivo %q", name)
}

// Open lê todo o conteúdo e abre a planilha no formato detectado
func Open(name string, r io.Reader) (Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo %q", name)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrapf(ErrEmptyFile, "arquivo %q", name)
	}

	format, err := DetectFormat(name, data)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return openXLSX(data)
	case FormatXLS:
		return openXLS(data)
	default:
		return openCSV(name, data)
	}
}

func isText(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	return !bytes.ContainsRune(sample, 0)
}
