package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyDataset contextKey = "dataset"
)

// RequireSession só deixa passar requisições quando há planilhas carregadas.
// O dataset atual fica disponível no contexto da requisição.
func RequireSession(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ds, err := store.Current()
			if err != nil {
				logrus.WithField("path", r.URL.Path).Debug("Requisição sem planilhas carregadas")
				apiErrors.WriteError(w, apiErrors.ErrSessionNotReady, "Nenhuma planilha carregada. Envie vendas e devoluções primeiro.", nil)
				return
			}

			store.Touch()

			ctx := context.WithValue(r.Context(), ContextKeyDataset, ds)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DatasetFromContext recupera o dataset colocado por RequireSession
func DatasetFromContext(ctx context.Context) (*domain.Dataset, bool) {
	ds, ok := ctx.Value(ContextKeyDataset).(*domain.Dataset)
	return ds, ok && ds != nil
}
