package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/domain"
)

// SeedAccount inserts an account directly, bypassing the service layer.
func SeedAccount(t *testing.T, db *sql.DB, number, holder, cpf string, balance decimal.Decimal, active bool) *domain.Account {
	t.Helper()

	account := &domain.Account{
		AccountNumber: number,
		Holder:        holder,
		CPF:           cpf,
		Balance:       balance,
		CreatedAt:     time.Now().UTC(),
		Active:        active,
	}

	err := db.QueryRow(
		`INSERT INTO contas (numero_conta, titular, cpf, saldo, data_criacao, ativo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		number, holder, cpf, balance, account.CreatedAt, active,
	).Scan(&account.ID)
	if err != nil {
		t.Fatalf("seed account %s: %v", number, err)
	}

	return account
}

// AccountBalance reads the stored balance for assertions.
func AccountBalance(t *testing.T, db *sql.DB, id int64) decimal.Decimal {
	t.Helper()

	var balance decimal.Decimal
	if err := db.QueryRow(`SELECT saldo FROM contas WHERE id = $1`, id).Scan(&balance); err != nil {
		t.Fatalf("read balance for account %d: %v", id, err)
	}
	return balance
}

// CountTransactions counts rows touching the account as either side.
func CountTransactions(t *testing.T, db *sql.DB, accountID int64) int {
	t.Helper()

	var total int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM transacoes WHERE conta_origem_id = $1 OR conta_destino_id = $1`,
		accountID,
	).Scan(&total)
	if err != nil {
		t.Fatalf("count transactions for account %d: %v", accountID, err)
	}
	return total
}
