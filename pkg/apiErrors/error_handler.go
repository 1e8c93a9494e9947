package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API.
// O cliente decide o que exibir pelo código, nunca pelo texto da mensagem.
const (
	// Erros de autenticação (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrEmailNotConfirmed     = "AUTH_004" // E-mail ainda não confirmado
	ErrInvalidToken          = "AUTH_005" // Token inválido
	ErrExpiredToken          = "AUTH_006" // Token expirado
	ErrInsufficientPrivilege = "AUTH_007" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_008" // E-mail já cadastrado
	ErrPendingApproval       = "AUTH_009" // Conta aguardando liberação de acesso
	ErrInvalidResetToken     = "AUTH_010" // Token de redefinição inválido ou expirado

	// Erros de validação (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrOutOfRange          = "VAL_004" // Valor numérico fora da faixa permitida
	ErrUnknownCardKey      = "VAL_005" // Chave de cartão desconhecida
	ErrInvalidDay          = "VAL_006" // Dia fora do calendário do mês

	// Erros do servidor (SRV_xxx)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrNotFound          = "SRV_003" // Registro não encontrado
	ErrPartialRefresh    = "SRV_004" // Atualização parcial do dashboard
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrEmailNotConfirmed:     http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrPendingApproval:       http.StatusForbidden,
	ErrInvalidResetToken:     http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrOutOfRange:            http.StatusBadRequest,
	ErrUnknownCardKey:        http.StatusBadRequest,
	ErrInvalidDay:            http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrPartialRefresh:        http.StatusMultiStatus,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado na resposta HTTP
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
