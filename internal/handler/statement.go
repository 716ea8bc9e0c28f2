package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/logging"
	"github.com/contabank/api/internal/service"
)

type statementService interface {
	GetStatement(ctx context.Context, q service.StatementQuery) (*domain.Statement, error)
}

type StatementHandler struct {
	statements statementService
}

func NewStatementHandler(statements statementService) *StatementHandler {
	return &StatementHandler{statements: statements}
}

type statementEntryDTO struct {
	transactionDTO
	Direction    string `json:"tipo_movimento"`
	Counterparty string `json:"conta_relacionada"`
	HighValue    bool   `json:"valor_alto"`
}

type statementPeriodDTO struct {
	DateFrom string `json:"data_inicio,omitempty"`
	DateTo   string `json:"data_fim,omitempty"`
}

type statementResponse struct {
	Account      accountDTO          `json:"conta"`
	Balance      float64             `json:"saldo_atual"`
	Transactions []statementEntryDTO `json:"transacoes"`
	Total        int                 `json:"total_transacoes"`
	Period       statementPeriodDTO  `json:"periodo"`
}

func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, appErr := accountIDFromPath(r)
	if appErr != nil {
		RespondAppError(w, appErr, nil)
		return
	}

	query := service.StatementQuery{
		AccountID: id,
		DateFrom:  r.URL.Query().Get("data_inicio"),
		DateTo:    r.URL.Query().Get("data_fim"),
	}
	if raw := r.URL.Query().Get("limite"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			query.Limit = &limit
		}
	}

	statement, err := h.statements.GetStatement(r.Context(), query)
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to build statement", "error", err)
		RespondDomainError(w, err)
		return
	}

	entries := make([]statementEntryDTO, len(statement.Entries))
	for i := range statement.Entries {
		e := &statement.Entries[i]
		entries[i] = statementEntryDTO{
			transactionDTO: toTransactionDTO(&e.Transaction),
			Direction:      string(e.Direction),
			Counterparty:   e.Counterparty,
			HighValue:      e.HighValue,
		}
	}

	RespondSuccess(w, http.StatusOK, statementResponse{
		Account:      toAccountDTO(statement.Account),
		Balance:      statement.Account.Balance.InexactFloat64(),
		Transactions: entries,
		Total:        len(entries),
		Period: statementPeriodDTO{
			DateFrom: r.URL.Query().Get("data_inicio"),
			DateTo:   r.URL.Query().Get("data_fim"),
		},
	})
}
