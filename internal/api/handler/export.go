package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/returns-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
	"github.com/vfg2006/returns-insights-api/pkg/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportReport gera o relatório xlsx com os mesmos filtros das rotas de análise
func ExportReport(analyzer analyzing.Analyzer, exporter reporting.Exporter, defaults domain.Filters) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, ok := middleware.DatasetFromContext(r.Context())
		if !ok {
			handleError(w, r, session.NewSessionError(session.ErrNotReady, apiErrors.ErrSessionNotReady, ""))
			return
		}

		f, err := parseFilters(r.URL.Query(), defaults)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		overview, err := analyzer.Overview(r.Context(), ds, f)
		if err != nil {
			handleError(w, r, err)
			return
		}

		// o arquivo é montado em memória para que uma falha ainda vire resposta JSON
		var buf bytes.Buffer
		if err := exporter.Export(r.Context(), &buf, ds, overview); err != nil {
			handleError(w, r, err)
			return
		}

		name := exporter.FileName()
		log.ForContext(r.Context()).WithField("file_name", name).Info("export: enviando relatório")

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("export: cliente desconectou durante o envio")
		}
	}
}
