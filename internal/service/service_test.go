package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/config"
	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/repository"
)

type mockAccountRepo struct {
	accounts map[int64]*domain.Account
	count    int64

	created        []*domain.Account
	balanceUpdates map[int64]decimal.Decimal
}

func newMockAccountRepo(accounts ...*domain.Account) *mockAccountRepo {
	m := &mockAccountRepo{
		accounts:       make(map[int64]*domain.Account),
		balanceUpdates: make(map[int64]decimal.Decimal),
	}
	for _, a := range accounts {
		m.accounts[a.ID] = a
	}
	return m
}

func (m *mockAccountRepo) GetByID(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
	}
	copied := *a
	return &copied, nil
}

func (m *mockAccountRepo) GetByCPF(_ context.Context, cpf string) (*domain.Account, error) {
	for _, a := range m.accounts {
		if a.CPF == cpf {
			copied := *a
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("GetByCPF: %w", domain.ErrNotFound)
}

func (m *mockAccountRepo) ListActive(_ context.Context) ([]domain.Account, error) {
	var result []domain.Account
	for _, a := range m.accounts {
		if a.Active {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAccountRepo) Count(_ context.Context) (int64, error) {
	return m.count, nil
}

func (m *mockAccountRepo) Create(_ context.Context, account *domain.Account) error {
	account.ID = int64(len(m.created)) + 1
	m.created = append(m.created, account)
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) UpdateBalance(_ context.Context, _ *sql.Tx, id int64, balance decimal.Decimal) error {
	m.balanceUpdates[id] = balance
	return nil
}

type mockTransactionRepo struct {
	rows        []repository.StatementRow
	byReference map[uuid.UUID]*domain.Transaction

	created   []*domain.Transaction
	lastLimit int
	lastFrom  *time.Time
	lastTo    *time.Time
}

func (m *mockTransactionRepo) Create(_ context.Context, _ *sql.Tx, t *domain.Transaction) error {
	t.ID = int64(len(m.created)) + 1
	m.created = append(m.created, t)
	return nil
}

func (m *mockTransactionRepo) GetByReference(_ context.Context, reference uuid.UUID) (*domain.Transaction, error) {
	t, ok := m.byReference[reference]
	if !ok {
		return nil, fmt.Errorf("GetByReference: %w", domain.ErrNotFound)
	}
	return t, nil
}

func (m *mockTransactionRepo) ListByAccount(_ context.Context, _ int64, limit int, from, to *time.Time) ([]repository.StatementRow, error) {
	m.lastLimit = limit
	m.lastFrom = from
	m.lastTo = to
	return m.rows, nil
}

func newTestService(accounts *mockAccountRepo, transactions *mockTransactionRepo) *Service {
	return NewService(accounts, transactions, nil, &config.Config{StatementDefaultLimit: 10})
}

func activeAccount(id int64, number, holder string, balance decimal.Decimal) *domain.Account {
	return &domain.Account{
		ID:            id,
		AccountNumber: number,
		Holder:        holder,
		CPF:           fmt.Sprintf("%011d", id),
		Balance:       balance,
		CreatedAt:     time.Now().UTC(),
		Active:        true,
	}
}
