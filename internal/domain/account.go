package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID            int64
	AccountNumber string
	Holder        string
	CPF           string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	Active        bool
}
