package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
)

var (
	ErrNothingToExport = errors.New("nenhuma análise para exportar")
	ErrWriteReport     = errors.New("erro ao gravar relatório")
)

// ExportError é um erro de geração do relatório com código da API
type ExportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func NewExportError(err error, details string) *ExportError {
	code := apiErrors.ErrExportFailed
	if errors.Is(err, ErrNothingToExport) {
		code = apiErrors.ErrSessionNotReady
	}
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
