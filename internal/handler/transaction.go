package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/logging"
	"github.com/contabank/api/internal/service"
)

type ledgerService interface {
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (*service.DepositResult, error)
	Transfer(ctx context.Context, req service.TransferRequest) (*service.TransferResult, error)
	GetTransactionByReference(ctx context.Context, token string) (*domain.Transaction, error)
}

type TransactionHandler struct {
	ledger ledgerService
}

func NewTransactionHandler(ledger ledgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

type depositRequest struct {
	AccountID   int64           `json:"conta_id"`
	Amount      decimal.Decimal `json:"valor"`
	Description string          `json:"descricao"`
}

func (r depositRequest) Validate() []FieldError {
	var errs []FieldError
	if r.AccountID == 0 {
		errs = append(errs, FieldError{Field: "conta_id", Message: "required"})
	}
	if r.Amount.IsZero() {
		errs = append(errs, FieldError{Field: "valor", Message: "required"})
	}
	return errs
}

type depositResponse struct {
	Reference string  `json:"codigo_transacao"`
	Amount    float64 `json:"valor"`
	Balance   float64 `json:"saldo_atual"`
}

func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	result, err := h.ledger.Deposit(r.Context(), req.AccountID, req.Amount, req.Description)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to deposit", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, depositResponse{
		Reference: result.Transaction.Reference.String(),
		Amount:    result.Transaction.Amount.InexactFloat64(),
		Balance:   result.Balance.InexactFloat64(),
	})
}

type transferRequest struct {
	SourceID      int64           `json:"conta_origem_id"`
	DestinationID int64           `json:"conta_destino_id"`
	Amount        decimal.Decimal `json:"valor"`
	Description   string          `json:"descricao"`
}

func (r transferRequest) Validate() []FieldError {
	var errs []FieldError
	if r.SourceID == 0 {
		errs = append(errs, FieldError{Field: "conta_origem_id", Message: "required"})
	}
	if r.DestinationID == 0 {
		errs = append(errs, FieldError{Field: "conta_destino_id", Message: "required"})
	}
	// valor is not presence-checked here: an explicit zero must fail the
	// amount rule, not the required-field one.
	return errs
}

type transferAccountDTO struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"numero"`
	Balance       float64 `json:"saldo_atual"`
}

type transferResponse struct {
	Reference   string             `json:"codigo_transacao"`
	Amount      float64            `json:"valor"`
	Source      transferAccountDTO `json:"conta_origem"`
	Destination transferAccountDTO `json:"conta_destino"`
	CreatedAt   time.Time          `json:"data_transacao"`
}

func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		RespondValidationError(w, fields)
		return
	}

	result, err := h.ledger.Transfer(r.Context(), service.TransferRequest{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to transfer", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, transferResponse{
		Reference: result.Transaction.Reference.String(),
		Amount:    result.Transaction.Amount.InexactFloat64(),
		Source: transferAccountDTO{
			ID:            result.Source.ID,
			AccountNumber: result.Source.AccountNumber,
			Balance:       result.Source.Balance.InexactFloat64(),
		},
		Destination: transferAccountDTO{
			ID:            result.Destination.ID,
			AccountNumber: result.Destination.AccountNumber,
			Balance:       result.Destination.Balance.InexactFloat64(),
		},
		CreatedAt: result.Transaction.CreatedAt,
	})
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.ledger.GetTransactionByReference(r.Context(), r.PathValue("token"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toTransactionDTO(t))
}
