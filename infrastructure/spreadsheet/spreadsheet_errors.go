package spreadsheet

import "errors"

var (
	ErrUnsupportedFormat = errors.New("formato de planilha não suportado")
	ErrEmptyFile         = errors.New("arquivo vazio")
	ErrSheetNotFound     = errors.New("aba não encontrada")
)
