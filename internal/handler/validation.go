package handler

import (
	"encoding/json"
	"net/http"

	"github.com/contabank/api/internal/validation"
)

// ValidationHandler exposes the personal-data validators. Validation
// outcomes are always 200; only a missing field or broken body is a 400.
type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

type validationResultDTO struct {
	Valid   bool   `json:"valido"`
	Message string `json:"mensagem"`
}

func (h *ValidationHandler) CPF(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CPF string `json:"cpf"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if req.CPF == "" {
		RespondValidationError(w, []FieldError{{Field: "cpf", Message: "required"}})
		return
	}

	result := validation.CPF(req.CPF)

	var formatted *string
	if result.Valid {
		digits := validation.Digits(req.CPF)
		formatted = &digits
	}

	RespondSuccess(w, http.StatusOK, struct {
		validationResultDTO
		Formatted *string `json:"cpf_formatado"`
	}{
		validationResultDTO: validationResultDTO{Valid: result.Valid, Message: result.Message},
		Formatted:           formatted,
	})
}

func (h *ValidationHandler) BirthDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BirthDate string `json:"data_nascimento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if req.BirthDate == "" {
		RespondValidationError(w, []FieldError{{Field: "data_nascimento", Message: "required"}})
		return
	}

	result := validation.BirthDate(req.BirthDate)
	RespondSuccess(w, http.StatusOK, validationResultDTO{
		Valid:   result.Valid,
		Message: result.Message,
	})
}

func (h *ValidationHandler) Phone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone string `json:"telefone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}
	if req.Phone == "" {
		RespondValidationError(w, []FieldError{{Field: "telefone", Message: "required"}})
		return
	}

	result := validation.Phone(req.Phone)

	var formatted *string
	if result.Valid {
		f := validation.FormatPhone(req.Phone)
		formatted = &f
	}

	RespondSuccess(w, http.StatusOK, struct {
		validationResultDTO
		Formatted *string `json:"telefone_formatado"`
	}{
		validationResultDTO: validationResultDTO{Valid: result.Valid, Message: result.Message},
		Formatted:           formatted,
	})
}

type formResponse struct {
	Valid  bool                           `json:"valido_geral"`
	Fields map[string]validationResultDTO `json:"validacoes"`
}

func (h *ValidationHandler) Form(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CPF       *string `json:"cpf"`
		BirthDate *string `json:"data_nascimento"`
		Phone     *string `json:"telefone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	result := validation.Form(validation.FormInput{
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
	})

	fields := make(map[string]validationResultDTO, len(result.Fields))
	for name, fr := range result.Fields {
		fields[name] = validationResultDTO{Valid: fr.Valid, Message: fr.Message}
	}

	RespondSuccess(w, http.StatusOK, formResponse{
		Valid:  result.Valid,
		Fields: fields,
	})
}
