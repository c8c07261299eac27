package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/returns-insights-api/internal/domain"
	"github.com/vfg2006/returns-insights-api/internal/usecases/session/mocks"
	"github.com/vfg2006/returns-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(store *mocks.MockStore)
		expectedStatus int
		expectNext     bool
	}{
		{
			name: "Sessão pronta libera a requisição",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().Current().Return(&domain.Dataset{}, nil)
				store.EXPECT().Touch()
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "Sessão sem planilhas bloqueia",
			setup: func(store *mocks.MockStore) {
				store.EXPECT().Current().Return(nil, errors.New("sessão vazia"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			tt.setup(store)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				ds, ok := DatasetFromContext(r.Context())
				assert.True(t, ok)
				assert.NotNil(t, ds)
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/metrics", nil)
			RequireSession(store)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNext, called)
			if !tt.expectNext {
				assert.Contains(t, rec.Body.String(), apiErrors.ErrSessionNotReady)
			}
		})
	}
}

func TestDatasetFromContextVazio(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := DatasetFromContext(req.Context())
	assert.False(t, ok)
}

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{"Origem permitida", http.MethodGet, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
		{"Origem desconhecida", http.MethodGet, "http://evil.test", http.StatusNoContent, ""},
		{"Preflight responde direto", http.MethodOptions, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/v1/session", nil)
			req.Header.Set("Origin", tt.origin)

			Cors(allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
