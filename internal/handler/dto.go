package handler

import (
	"time"

	"github.com/contabank/api/internal/domain"
)

// Amounts serialize as plain JSON numbers, timestamps as ISO-8601.
type accountDTO struct {
	ID            int64     `json:"id"`
	AccountNumber string    `json:"numero_conta"`
	Holder        string    `json:"titular"`
	CPF           string    `json:"cpf"`
	Balance       float64   `json:"saldo"`
	CreatedAt     time.Time `json:"data_criacao"`
	Active        bool      `json:"ativo"`
}

func toAccountDTO(a *domain.Account) accountDTO {
	return accountDTO{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Holder:        a.Holder,
		CPF:           a.CPF,
		Balance:       a.Balance.InexactFloat64(),
		CreatedAt:     a.CreatedAt,
		Active:        a.Active,
	}
}

type transactionDTO struct {
	ID            int64     `json:"id"`
	Reference     string    `json:"codigo_unico"`
	SourceID      *int64    `json:"conta_origem_id"`
	DestinationID *int64    `json:"conta_destino_id"`
	Kind          string    `json:"tipo"`
	Amount        float64   `json:"valor"`
	Description   string    `json:"descricao"`
	CreatedAt     time.Time `json:"data_transacao"`
	Status        string    `json:"status"`
}

func toTransactionDTO(t *domain.Transaction) transactionDTO {
	return transactionDTO{
		ID:            t.ID,
		Reference:     t.Reference.String(),
		SourceID:      t.SourceID,
		DestinationID: t.DestinationID,
		Kind:          string(t.Kind),
		Amount:        t.Amount.InexactFloat64(),
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		Status:        string(t.Status),
	}
}
