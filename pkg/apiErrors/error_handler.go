package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Senha do dashboard incorreta
	ErrInvalidToken       = "AUTH_002" // Token inválido
	ErrExpiredToken       = "AUTH_003" // Token expirado
	ErrMissingToken       = "AUTH_004" // Token ausente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDateRange    = "VAL_004" // Intervalo de datas inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrCommunication  = "SRV_002" // Erro de comunicação

	// Erros do data warehouse (6000-6999)
	ErrWarehouseQuery       = "WH_001" // Falha ao consultar o BigQuery
	ErrWarehouseUnavailable = "WH_002" // BigQuery indisponível
	ErrTableNotFound        = "WH_003" // Tabela não encontrada no dataset
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrMissingToken:         http.StatusUnauthorized,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrInvalidDateRange:     http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrCommunication:        http.StatusServiceUnavailable,
	ErrWarehouseQuery:       http.StatusBadGateway,
	ErrWarehouseUnavailable: http.StatusServiceUnavailable,
	ErrTableNotFound:        http.StatusNotFound,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
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
