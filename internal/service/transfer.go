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

type TransferRequest struct {
	SourceID      int64
	DestinationID int64
	Amount        decimal.Decimal
	Description   string
}

type TransferResult struct {
	Transaction *domain.Transaction
	Source      *domain.Account
	Destination *domain.Account
}

func (s *Service) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	log := logging.FromContext(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrInvalidAmount)
	}

	source, err := s.accounts.GetByID(ctx, req.SourceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Transfer: source: %w", domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("Transfer: source: %w", err)
	}

	// A self-transfer debits and credits the same account record, netting
	// to zero. There is deliberately no guard against it.
	destination := source
	if req.DestinationID != req.SourceID {
		destination, err = s.accounts.GetByID(ctx, req.DestinationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("Transfer: destination: %w", domain.ErrAccountNotFound)
			}
			return nil, fmt.Errorf("Transfer: destination: %w", err)
		}
	}

	if !source.Active || !destination.Active {
		return nil, fmt.Errorf("Transfer: %w", domain.ErrInactiveAccount)
	}

	if source.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("Transfer: %w", &domain.InsufficientFundsError{Available: source.Balance})
	}

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Transferência de %s para %s", source.Holder, destination.Holder)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Transfer: begin tx: %w", err)
	}
	defer tx.Rollback()

	source.Balance = source.Balance.Sub(req.Amount)
	destination.Balance = destination.Balance.Add(req.Amount)

	if err := s.accounts.UpdateBalance(ctx, tx, source.ID, source.Balance); err != nil {
		return nil, fmt.Errorf("Transfer: update source: %w", err)
	}
	if err := s.accounts.UpdateBalance(ctx, tx, destination.ID, destination.Balance); err != nil {
		return nil, fmt.Errorf("Transfer: update destination: %w", err)
	}

	t := &domain.Transaction{
		Reference:     uuid.New(),
		SourceID:      &source.ID,
		DestinationID: &destination.ID,
		Kind:          domain.TransactionKindTransfer,
		Amount:        req.Amount,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
		Status:        domain.TransactionStatusCompleted,
	}
	if err := s.transactions.Create(ctx, tx, t); err != nil {
		return nil, fmt.Errorf("Transfer: create transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Transfer: commit: %w", err)
	}

	log.Info("transfer completed",
		"reference", t.Reference,
		"source_account", source.ID,
		"destination_account", destination.ID,
		"amount", req.Amount,
	)

	return &TransferResult{Transaction: t, Source: source, Destination: destination}, nil
}
