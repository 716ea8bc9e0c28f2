package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposito"
	TransactionKindTransfer   TransactionKind = "transferencia"
	TransactionKindWithdrawal TransactionKind = "saque"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pendente"
	TransactionStatusCompleted TransactionStatus = "concluida"
	TransactionStatusCancelled TransactionStatus = "cancelada"
)

type Transaction struct {
	ID            int64
	Reference     uuid.UUID
	SourceID      *int64
	DestinationID *int64
	Kind          TransactionKind
	Amount        decimal.Decimal
	Description   string
	CreatedAt     time.Time
	Status        TransactionStatus
}

type MovementDirection string

const (
	MovementIn  MovementDirection = "entrada"
	MovementOut MovementDirection = "saida"
)

// NoCounterparty is reported when the other side of a statement entry is
// absent, e.g. a deposit has no source account.
const NoCounterparty = "N/A"

// StatementEntry is a transaction viewed from one account's perspective,
// with the movement direction and counterparty resolved.
type StatementEntry struct {
	Transaction
	Direction    MovementDirection
	Counterparty string
	HighValue    bool
}

type Statement struct {
	Account  *Account
	Entries  []StatementEntry
	DateFrom *time.Time
	DateTo   *time.Time
}
