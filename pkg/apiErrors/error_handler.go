package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredSession     = "AUTH_007" // Sessão encerrada ou trocada de conta
	ErrTooManyAttempts    = "AUTH_011" // Muitas tentativas de login

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de sessão
	ErrConfirmationRequired = "SES_001" // Ação destrutiva exige confirmação
	ErrSaleNotFound         = "SES_002" // Venda não encontrada
	ErrNotAuthenticated     = "SES_003" // Nenhuma conta ativa
	ErrJobNotFound          = "SES_004" // Tarefa agendada desconhecida
	ErrJobRunning           = "SES_005" // Tarefa agendada já em execução

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrStorageOperation = "SRV_002" // Erro ao gravar no armazenamento
	ErrServiceCancelled = "SRV_003" // Requisição cancelada pelo cliente
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredSession:       http.StatusUnauthorized,
	ErrTooManyAttempts:      http.StatusTooManyRequests,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusUnprocessableEntity,
	ErrConfirmationRequired: http.StatusConflict,
	ErrSaleNotFound:         http.StatusNotFound,
	ErrNotAuthenticated:     http.StatusUnauthorized,
	ErrJobNotFound:          http.StatusNotFound,
	ErrJobRunning:           http.StatusConflict,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrStorageOperation:     http.StatusInternalServerError,
	ErrServiceCancelled:     http.StatusRequestTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
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
