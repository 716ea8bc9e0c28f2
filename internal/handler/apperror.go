package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Corpo da requisição inválido"}
	ErrValidationFailed = &AppError{http.StatusBadRequest, "VALIDATION_FAILED", "Validação falhou"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Recurso não encontrado"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno inesperado"}

	ErrAccountNotFound   = &AppError{http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Conta não encontrada"}
	ErrInactiveAccount   = &AppError{http.StatusBadRequest, "INACTIVE_ACCOUNT", "Conta está inativa"}
	ErrInvalidAmount     = &AppError{http.StatusBadRequest, "INVALID_AMOUNT", "Valor deve ser maior que zero"}
	ErrInsufficientFunds = &AppError{http.StatusBadRequest, "INSUFFICIENT_FUNDS", "Saldo insuficiente"}
	ErrDuplicateCPF      = &AppError{http.StatusBadRequest, "DUPLICATE_CPF", "CPF já cadastrado"}
	ErrMissingField      = &AppError{http.StatusBadRequest, "MISSING_FIELD", "Campo obrigatório ausente"}
	ErrInvalidDateFormat = &AppError{http.StatusBadRequest, "INVALID_DATE_FORMAT", "Formato de data inválido. Use ISO format (YYYY-MM-DD)"}
)
