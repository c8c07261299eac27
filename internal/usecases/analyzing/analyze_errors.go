package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
)

var (
	ErrInvalidFilters    = errors.New("filtros inválidos")
	ErrInvalidSimulation = errors.New("percentual de redução inválido")
	ErrNilDataset        = errors.New("nenhum dataset carregado")
)

// AnalysisError carrega o código de erro da API junto do erro base
type AnalysisError struct {
	Err     error
	Code    string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(err error, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    codeFor(err),
		Details: details,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFilters):
		return apiErrors.ErrInvalidFilter
	case errors.Is(err, ErrInvalidSimulation):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, ErrNilDataset):
		return apiErrors.ErrSessionNotReady
	default:
		return apiErrors.ErrInternalServer
	}
}
