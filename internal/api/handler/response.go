package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: falha ao codificar resposta")
	}
}

// handleError traduz os erros dos casos de uso para a resposta padronizada da API
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var parseErr *ingesting.ParseError
	var analysisErr *analyzing.AnalysisError
	var sessionErr *session.SessionError
	var exportErr *reporting.ExportError

	switch {
	case errors.As(err, &parseErr):
		logger.WithField("file_name", parseErr.File).Warn("handler: planilha rejeitada")
		apiErrors.WriteError(w, parseErr.Code, parseErr.Error(), map[string]string{"file": parseErr.File})
	case errors.As(err, &analysisErr):
		logger.Warn("handler: análise rejeitada")
		apiErrors.WriteError(w, analysisErr.Code, analysisErr.Err.Error(), detailsOrNil(analysisErr.Details))
	case errors.As(err, &sessionErr):
		logger.Warn("handler: sessão indisponível")
		apiErrors.WriteError(w, sessionErr.Code, sessionErr.Err.Error(), detailsOrNil(sessionErr.Details))
	case errors.As(err, &exportErr):
		logger.Error("handler: falha na exportação")
		apiErrors.WriteError(w, exportErr.Code, exportErr.Err.Error(), detailsOrNil(exportErr.Details))
	default:
		logger.Error("handler: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}
	return details
}
