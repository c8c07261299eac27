package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/returns-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"github.com/vfg2006/returns-insights-api/pkg/log"
)

const (
	salesField   = "sales"
	returnsField = "returns"

	// parte do formulário mantida em memória, o resto vai para arquivos temporários
	multipartMemory = 32 << 20
)

// UploadDataset recebe as planilhas de vendas e devoluções e carrega a sessão
func UploadDataset(store session.Store, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.WithField("file_limit", maxBytes).Warn("upload: arquivos acima do limite")
				apiErrors.WriteError(w, apiErrors.ErrUploadTooLarge, "Arquivos acima do limite permitido", map[string]int64{"max_bytes": maxBytes})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Envie os arquivos como multipart/form-data", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		sales, salesName, err := formFile(r, salesField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingUploadFile, "Arquivo de vendas não enviado", map[string]string{"field": salesField})
			return
		}
		defer sales.Close()

		returns, returnsName, err := formFile(r, returnsField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingUploadFile, "Arquivo de devoluções não enviado", map[string]string{"field": returnsField})
			return
		}
		defer returns.Close()

		logger.WithFields(log.Fields{
			"file_sales":   salesName,
			"file_returns": returnsName,
		}).Info("upload: planilhas recebidas")

		snap, err := store.Load(r.Context(),
			ingesting.Upload{Name: salesName, Reader: sales},
			ingesting.Upload{Name: returnsName, Reader: returns},
		)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, snap)
	}
}

func formFile(r *http.Request, field string) (multipart.File, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	return file, header.Filename, nil
}

// GetSession retorna o estado atual da sessão sem o dataset
func GetSession(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, store.Snapshot())
	}
}

// ResetSession descarta as planilhas carregadas
func ResetSession(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, store.Reset(r.Context()))
	}
}
