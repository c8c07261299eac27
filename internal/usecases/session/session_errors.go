package session

import (
	"errors"
	"fmt"

	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
)

var (
	ErrNotReady   = errors.New("nenhuma planilha carregada")
	ErrGenerateID = errors.New("erro ao gerar identificador da sessão")
)

// SessionError carrega o código da API junto do erro base
type SessionError struct {
	Err     error
	Code    string
	Details string
}

func (e *SessionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func NewSessionError(err error, code string, details string) *SessionError {
	return &SessionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func notReady() *SessionError {
	return NewSessionError(ErrNotReady, apiErrors.ErrSessionNotReady, "envie as planilhas de vendas e devoluções")
}
