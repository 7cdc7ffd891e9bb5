package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidCampaignType = "VAL_004" // Tipo de campanha inválido
	ErrInvalidTransition   = "VAL_005" // Transição de status não permitida
	ErrInvalidInterestTier = "VAL_006" // Nível de interesse inválido

	// Erros de recurso (RES)
	ErrCampaignNotFound = "RES_001" // Campanha não encontrada
	ErrSegmentNotFound  = "RES_002" // Segmento não encontrado
	ErrCustomerNotFound = "RES_003" // Cliente não encontrado
	ErrTemplateNotFound = "RES_004" // Template não encontrado para o canal
	ErrROINotComputed   = "RES_005" // ROI ainda não calculado

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo (provedor de entrega)
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidCampaignType: http.StatusBadRequest,
	ErrInvalidTransition:   http.StatusConflict,
	ErrInvalidInterestTier: http.StatusBadRequest,
	ErrCampaignNotFound:    http.StatusNotFound,
	ErrSegmentNotFound:     http.StatusNotFound,
	ErrCustomerNotFound:    http.StatusNotFound,
	ErrTemplateNotFound:    http.StatusNotFound,
	ErrROINotComputed:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
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
