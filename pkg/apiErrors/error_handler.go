package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de roteamento
	ErrNotFound         = "RES_001" // Rota não encontrada
	ErrMethodNotAllowed = "RES_002" // Método não permitido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação

	// Erros de dados do warehouse
	ErrRequiredDatasetMissing     = "DATA_001" // Tabela obrigatória não encontrada
	ErrOptionalDatasetUnavailable = "DATA_002" // Tabela opcional não disponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:         http.StatusUnauthorized,
	ErrInvalidToken:               http.StatusUnauthorized,
	ErrExpiredToken:               http.StatusUnauthorized,
	ErrInsufficientPrivilege:      http.StatusForbidden,
	ErrInvalidRequest:             http.StatusBadRequest,
	ErrMissingRequiredData:        http.StatusBadRequest,
	ErrInvalidFormat:              http.StatusBadRequest,
	ErrNotFound:                   http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,
	ErrInternalServer:             http.StatusInternalServerError,
	ErrDatabaseOperation:          http.StatusInternalServerError,
	ErrExternalService:            http.StatusBadGateway,
	ErrCommunication:              http.StatusServiceUnavailable,
	ErrRequiredDatasetMissing:     http.StatusServiceUnavailable,
	ErrOptionalDatasetUnavailable: http.StatusNotFound,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusOf retorna o status HTTP associado ao código
func StatusOf(code string) int {
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
	w.WriteHeader(StatusOf(code))
	json.NewEncoder(w).Encode(apiErr)
}
