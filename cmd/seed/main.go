// Command seed wipes the database and loads a small set of demo accounts
// and transactions through the service layer.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/contabank/api/internal/config"
	"github.com/contabank/api/internal/logging"
	"github.com/contabank/api/internal/repository"
	"github.com/contabank/api/internal/service"
)

type seedAccount struct {
	holder  string
	cpf     string
	balance string
}

var seedAccounts = []seedAccount{
	{"Maria Silva Santos", "12345678901", "15000.00"},
	{"João Pedro Oliveira", "98765432109", "8500.50"},
	{"Ana Carolina Ferreira", "45678912303", "3200.75"},
	{"Carlos Eduardo Lima", "78912345606", "12750.25"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("contabank-seed", cfg.LogLevel, cfg.AppEnv)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := run(ctx, db, cfg); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed completed")
}

func run(ctx context.Context, db *sql.DB, cfg *config.Config) error {
	if _, err := db.ExecContext(ctx, `TRUNCATE transacoes, contas RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	accounts := repository.NewAccountRepository(db)
	transactions := repository.NewTransactionRepository(db)
	svc := service.NewService(accounts, transactions, repository.NewDB(db), cfg)

	ids := make([]int64, 0, len(seedAccounts))
	for _, sa := range seedAccounts {
		balance, err := decimal.NewFromString(sa.balance)
		if err != nil {
			return fmt.Errorf("parse balance for %s: %w", sa.holder, err)
		}

		account, err := svc.CreateAccount(ctx, sa.holder, sa.cpf, balance)
		if err != nil {
			return fmt.Errorf("create account %s: %w", sa.holder, err)
		}
		ids = append(ids, account.ID)
		slog.Info("account created", "number", account.AccountNumber, "holder", sa.holder)
	}

	// A spread of history so statements have something to show.
	if _, err := svc.Deposit(ctx, ids[0], decimal.NewFromInt(500), "Depósito inicial de demonstração"); err != nil {
		return fmt.Errorf("seed deposit: %w", err)
	}
	if _, err := svc.Deposit(ctx, ids[2], decimal.NewFromInt(1200), ""); err != nil {
		return fmt.Errorf("seed deposit: %w", err)
	}

	transfers := []struct {
		from, to int64
		amount   int64
	}{
		{ids[0], ids[1], 2500},
		{ids[1], ids[2], 750},
		{ids[3], ids[0], 6000},
	}
	for _, tr := range transfers {
		_, err := svc.Transfer(ctx, service.TransferRequest{
			SourceID:      tr.from,
			DestinationID: tr.to,
			Amount:        decimal.NewFromInt(tr.amount),
		})
		if err != nil {
			return fmt.Errorf("seed transfer: %w", err)
		}
	}

	return nil
}
