package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/config"
	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/repository"
)

// Transactions above this amount are flagged on statements.
var highValueThreshold = decimal.NewFromInt(5000)

type accountRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Account, error)
	ListActive(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, account *domain.Account) error
	UpdateBalance(ctx context.Context, tx *sql.Tx, id int64, balance decimal.Decimal) error
}

type transactionRepo interface {
	Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error
	GetByReference(ctx context.Context, reference uuid.UUID) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit int, from, to *time.Time) ([]repository.StatementRow, error)
}

type Service struct {
	accounts     accountRepo
	transactions transactionRepo
	db           *repository.DB
	config       *config.Config
}

func NewService(accounts accountRepo, transactions transactionRepo, db *repository.DB, cfg *config.Config) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		db:           db,
		config:       cfg,
	}
}
