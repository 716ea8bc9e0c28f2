package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/repository"
)

// Accepted textual formats for statement date bounds, tried in order.
var statementDateFormats = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// StatementQuery carries the extrato filters. A nil Limit means the caller
// gave none; an explicit zero is honoured and yields an empty statement.
type StatementQuery struct {
	AccountID int64
	Limit     *int
	DateFrom  string
	DateTo    string
}

func (s *Service) GetStatement(ctx context.Context, q StatementQuery) (*domain.Statement, error) {
	account, err := s.accounts.GetByID(ctx, q.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("GetStatement: %w", domain.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("GetStatement: %w", err)
	}

	limit := s.config.StatementDefaultLimit
	if q.Limit != nil && *q.Limit >= 0 {
		limit = *q.Limit
	}

	from, err := parseStatementDate(q.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("GetStatement: data_inicio: %w", err)
	}
	to, err := parseStatementDate(q.DateTo)
	if err != nil {
		return nil, fmt.Errorf("GetStatement: data_fim: %w", err)
	}

	rows, err := s.transactions.ListByAccount(ctx, q.AccountID, limit, from, to)
	if err != nil {
		return nil, fmt.Errorf("GetStatement: %w", err)
	}

	entries := make([]domain.StatementEntry, len(rows))
	for i, row := range rows {
		entries[i] = toStatementEntry(row, q.AccountID)
	}

	return &domain.Statement{
		Account:  account,
		Entries:  entries,
		DateFrom: from,
		DateTo:   to,
	}, nil
}

func (s *Service) GetTransactionByReference(ctx context.Context, token string) (*domain.Transaction, error) {
	reference, err := uuid.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("GetTransactionByReference: %w", domain.ErrNotFound)
	}

	t, err := s.transactions.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("GetTransactionByReference: %w", err)
	}
	return t, nil
}

func toStatementEntry(row repository.StatementRow, accountID int64) domain.StatementEntry {
	entry := domain.StatementEntry{
		Transaction:  row.Transaction,
		Direction:    domain.MovementOut,
		Counterparty: domain.NoCounterparty,
		HighValue:    row.Amount.GreaterThan(highValueThreshold),
	}

	if row.DestinationID != nil && *row.DestinationID == accountID {
		entry.Direction = domain.MovementIn
		if row.SourceNumber != nil {
			entry.Counterparty = *row.SourceNumber
		}
	} else if row.DestinationNumber != nil {
		entry.Counterparty = *row.DestinationNumber
	}

	return entry
}

func parseStatementDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range statementDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrInvalidDateFormat
}
