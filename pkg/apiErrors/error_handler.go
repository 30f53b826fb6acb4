package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro
const (
	// Erros de autenticação
	ErrMissingCredentials   = "AUTH_001" // Header Authorization ausente
	ErrMalformedCredentials = "AUTH_002" // Header Authorization mal formado
	ErrInvalidAPIKey        = "AUTH_003" // API key não confere

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidDays    = "VAL_002" // days fora do intervalo
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrRouteNotFound    = "REQ_001" // Rota inexistente
	ErrMethodNotAllowed = "REQ_002" // Método não suportado na rota

	// Erros do servidor
	ErrInternalServer      = "SRV_001" // Erro interno do servidor
	ErrUpstreamInvalid     = "SRV_002" // Resposta da Meta inválida
	ErrUpstreamUnavailable = "SRV_003" // Meta indisponível
	ErrUpstreamTimeout     = "SRV_004" // Meta não respondeu a tempo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingCredentials:   http.StatusUnauthorized,
	ErrMalformedCredentials: http.StatusUnauthorized,
	ErrInvalidAPIKey:        http.StatusForbidden,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrInvalidDays:          http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrUpstreamInvalid:      http.StatusInternalServerError,
	ErrUpstreamUnavailable:  http.StatusBadGateway,
	ErrUpstreamTimeout:      http.StatusGatewayTimeout,
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

// WriteRaw repassa um corpo de erro já serializado, como o retornado pela Meta
func WriteRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
