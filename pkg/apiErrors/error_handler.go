package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de leitura de planilhas
	ErrParseSales        = "PARSE_001" // Planilha de vendas ilegível
	ErrParseReturns      = "PARSE_002" // Planilha de devoluções ilegível
	ErrUnsupportedFile   = "PARSE_003" // Formato de arquivo não suportado
	ErrUploadTooLarge    = "PARSE_004" // Arquivo acima do limite
	ErrMissingUploadFile = "PARSE_005" // Campo de arquivo ausente no upload

	// Erros de sessão
	ErrSessionNotReady = "SESSION_001" // Nenhum dado carregado na sessão
	ErrSessionNotFound = "SESSION_002" // Job ou recurso de sessão inexistente

	// Erros de roteamento
	ErrRouteNotFound = "ROUTE_001" // Rota inexistente

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidFilter       = "VAL_004" // Filtro fora dos valores aceitos

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailed   = "SRV_002" // Falha ao gerar o relatório
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrParseSales:          http.StatusUnprocessableEntity,
	ErrParseReturns:        http.StatusUnprocessableEntity,
	ErrUnsupportedFile:     http.StatusUnsupportedMediaType,
	ErrUploadTooLarge:      http.StatusRequestEntityTooLarge,
	ErrMissingUploadFile:   http.StatusBadRequest,
	ErrSessionNotReady:     http.StatusConflict,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExportFailed:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
