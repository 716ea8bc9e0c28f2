package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contabank/api/internal/domain"
)

func TestTransferValidation(t *testing.T) {
	ctx := context.Background()

	source := activeAccount(1, "000001", "Maria Silva", decimal.NewFromInt(1000))
	destination := activeAccount(2, "000002", "João Pedro", decimal.NewFromInt(500))

	t.Run("amount must be positive", func(t *testing.T) {
		svc := newTestService(newMockAccountRepo(source, destination), &mockTransactionRepo{})

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
			_, err := svc.Transfer(ctx, TransferRequest{SourceID: 1, DestinationID: 2, Amount: amount})
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
		}
	})

	t.Run("source not found", func(t *testing.T) {
		svc := newTestService(newMockAccountRepo(destination), &mockTransactionRepo{})

		_, err := svc.Transfer(ctx, TransferRequest{SourceID: 1, DestinationID: 2, Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("destination not found", func(t *testing.T) {
		svc := newTestService(newMockAccountRepo(source), &mockTransactionRepo{})

		_, err := svc.Transfer(ctx, TransferRequest{SourceID: 1, DestinationID: 2, Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("inactive source", func(t *testing.T) {
		frozen := activeAccount(1, "000001", "Maria Silva", decimal.NewFromInt(1000))
		frozen.Active = false
		svc := newTestService(newMockAccountRepo(frozen, destination), &mockTransactionRepo{})

		_, err := svc.Transfer(ctx, TransferRequest{SourceID: 1, DestinationID: 2, Amount: decimal.NewFromInt(10)})
		require.ErrorIs(t, err, domain.ErrInactiveAccount)
	})

	t.Run("insufficient funds reports available balance and mutates nothing", func(t *testing.T) {
		accounts := newMockAccountRepo(source, destination)
		svc := newTestService(accounts, &mockTransactionRepo{})

		_, err := svc.Transfer(ctx, TransferRequest{SourceID: 1, DestinationID: 2, Amount: decimal.NewFromInt(1500)})
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)

		var insufficient *domain.InsufficientFundsError
		require.True(t, errors.As(err, &insufficient))
		assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(1000)),
			"available: got %s", insufficient.Available)

		assert.Empty(t, accounts.balanceUpdates)
	})
}

func TestDepositValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("amount must be positive", func(t *testing.T) {
		account := activeAccount(1, "000001", "Maria Silva", decimal.Zero)
		svc := newTestService(newMockAccountRepo(account), &mockTransactionRepo{})

		_, err := svc.Deposit(ctx, 1, decimal.NewFromInt(-5), "")
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("account not found", func(t *testing.T) {
		svc := newTestService(newMockAccountRepo(), &mockTransactionRepo{})

		_, err := svc.Deposit(ctx, 1, decimal.NewFromInt(5), "")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("inactive account", func(t *testing.T) {
		account := activeAccount(1, "000001", "Maria Silva", decimal.Zero)
		account.Active = false
		svc := newTestService(newMockAccountRepo(account), &mockTransactionRepo{})

		_, err := svc.Deposit(ctx, 1, decimal.NewFromInt(5), "")
		require.ErrorIs(t, err, domain.ErrInactiveAccount)
	})
}
