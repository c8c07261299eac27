package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrSalesFile   = errors.New("erro ao ler vendas")
	ErrReturnsFile = errors.New("erro ao ler devoluções")
	ErrNoSheets    = errors.New("planilha sem abas")
	ErrEmptySheet  = errors.New("aba sem linhas de dados")
)

// ParseError descreve a falha de leitura de um dos arquivos enviados
type ParseError struct {
	Err     error  // ErrSalesFile ou ErrReturnsFile
	Code    string // Código de erro para API
	File    string // Nome do arquivo enviado
	Details string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.File != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.File)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewParseError(err error, code, file, details string, cause error) *ParseError {
	return &ParseError{
		Err:     err,
		Code:    code,
		File:    file,
		Details: details,
		Cause:   cause,
	}
}
