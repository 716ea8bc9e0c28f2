package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/logging"
)

const defaultDepositDescription = "Depósito em conta"

type DepositResult struct {
	Transaction *domain.Transaction
	Balance     decimal.Decimal
}

func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (*DepositResult, error) {
	log := logging.FromContext(ctx)

	if !amount.IsPositive() {
		return nil, fmt.Errorf("Deposit: %w", domain.ErrInvalidAmount)
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Deposit: %w", domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("Deposit: %w", err)
	}
	if !account.Active {
		return nil, fmt.Errorf("Deposit: %w", domain.ErrInactiveAccount)
	}

	if description == "" {
		description = defaultDepositDescription
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Deposit: begin tx: %w", err)
	}
	defer tx.Rollback()

	newBalance := account.Balance.Add(amount)
	if err := s.accounts.UpdateBalance(ctx, tx, accountID, newBalance); err != nil {
		return nil, fmt.Errorf("Deposit: update balance: %w", err)
	}

	t := &domain.Transaction{
		Reference:     uuid.New(),
		DestinationID: &accountID,
		Kind:          domain.TransactionKindDeposit,
		Amount:        amount,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
		Status:        domain.TransactionStatusCompleted,
	}
	if err := s.transactions.Create(ctx, tx, t); err != nil {
		return nil, fmt.Errorf("Deposit: create transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Deposit: commit: %w", err)
	}

	log.Info("deposit completed",
		"reference", t.Reference,
		"account_id", accountID,
		"amount", amount,
		"balance", newBalance,
	)

	return &DepositResult{Transaction: t, Balance: newBalance}, nil
}
