package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/domain"
)

const accountColumns = `id, numero_conta, titular, cpf, saldo, data_criacao, ativo`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM contas WHERE id = $1`, id,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return a, nil
}

// GetByCPF looks up an account regardless of its active flag, so a
// deactivated account still blocks re-registration of the same CPF.
func (r *AccountRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM contas WHERE cpf = $1`, cpf,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByCPF: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByCPF: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) ListActive(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM contas WHERE ativo ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("ListActive: scan: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListActive: rows: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contas`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return total, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contas (numero_conta, titular, cpf, saldo, data_criacao, ativo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		account.AccountNumber, account.Holder, account.CPF,
		account.Balance, account.CreatedAt, account.Active,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, tx *sql.Tx, id int64, balance decimal.Decimal) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE contas SET saldo = $1 WHERE id = $2`, balance, id,
	)
	if err != nil {
		return fmt.Errorf("UpdateBalance: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateBalance: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("UpdateBalance: %w", domain.ErrNotFound)
	}
	return nil
}

func scanAccount(s scanner) (*domain.Account, error) {
	var a domain.Account
	err := s.Scan(
		&a.ID, &a.AccountNumber, &a.Holder, &a.CPF,
		&a.Balance, &a.CreatedAt, &a.Active,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
