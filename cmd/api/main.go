package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/contabank/api/internal/config"
	"github.com/contabank/api/internal/handler"
	"github.com/contabank/api/internal/logging"
	"github.com/contabank/api/internal/middleware"
	"github.com/contabank/api/internal/repository"
	"github.com/contabank/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("contabank-api", cfg.LogLevel, cfg.AppEnv)

	db, err := connectDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accounts := repository.NewAccountRepository(db)
	transactions := repository.NewTransactionRepository(db)
	svc := service.NewService(accounts, transactions, repository.NewDB(db), cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           buildRouter(svc, db),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func buildRouter(svc *service.Service, db *sql.DB) http.Handler {
	accounts := handler.NewAccountHandler(svc)
	transactions := handler.NewTransactionHandler(svc)
	statements := handler.NewStatementHandler(svc)
	validators := handler.NewValidationHandler()
	health := handler.NewHealthHandler(db)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Liveness)
	mux.HandleFunc("GET /health/ready", health.Readiness)

	mux.HandleFunc("POST /contas", accounts.Create)
	mux.HandleFunc("GET /contas", accounts.List)
	mux.HandleFunc("GET /contas/{id}", accounts.Get)

	mux.HandleFunc("POST /deposito", transactions.Deposit)
	mux.HandleFunc("POST /transferencia", transactions.Transfer)
	mux.HandleFunc("GET /transacoes/{token}", transactions.Get)
	mux.HandleFunc("GET /extrato/{id}", statements.Get)

	mux.HandleFunc("POST /validar-cpf", validators.CPF)
	mux.HandleFunc("POST /validar-data-nascimento", validators.BirthDate)
	mux.HandleFunc("POST /validar-telefone", validators.Phone)
	mux.HandleFunc("POST /validar-formulario", validators.Form)

	var h http.Handler = mux
	h = middleware.Recovery(h)
	h = middleware.Logging(h)
	h = middleware.RequestID(h)
	return h
}

func connectDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connectDB: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeS) * time.Second)

	for i := range 30 {
		if err = db.Ping(); err == nil {
			return db, nil
		}
		slog.Info("waiting for database", "attempt", i+1)
		time.Sleep(time.Second)
	}

	db.Close()
	return nil, fmt.Errorf("connectDB: gave up after 30 attempts: %w", err)
}
