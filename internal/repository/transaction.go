package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contabank/api/internal/domain"
)

const transactionColumns = `id, codigo_unico, conta_origem_id, conta_destino_id,
	tipo, valor, descricao, data_transacao, status`

// StatementRow is a transaction joined with the account numbers of both
// sides, as needed to resolve the counterparty of a statement entry.
type StatementRow struct {
	domain.Transaction
	SourceNumber      *string
	DestinationNumber *string
}

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error {
	err := tx.QueryRowContext(ctx,
		`INSERT INTO transacoes (codigo_unico, conta_origem_id, conta_destino_id,
			tipo, valor, descricao, data_transacao, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		t.Reference, t.SourceID, t.DestinationID,
		t.Kind, t.Amount, t.Description, t.CreatedAt, t.Status,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *TransactionRepository) GetByReference(ctx context.Context, reference uuid.UUID) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transacoes WHERE codigo_unico = $1`,
		reference,
	)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByReference: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByReference: %w", err)
	}
	return t, nil
}

// ListByAccount returns transactions where the account is either side,
// newest first, optionally bounded by an inclusive date range.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit int, from, to *time.Time) ([]StatementRow, error) {
	query := `SELECT t.id, t.codigo_unico, t.conta_origem_id, t.conta_destino_id,
		t.tipo, t.valor, t.descricao, t.data_transacao, t.status,
		o.numero_conta, d.numero_conta
	FROM transacoes t
	LEFT JOIN contas o ON o.id = t.conta_origem_id
	LEFT JOIN contas d ON d.id = t.conta_destino_id
	WHERE (t.conta_origem_id = $1 OR t.conta_destino_id = $1)`

	args := []any{accountID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND t.data_transacao >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND t.data_transacao <= $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY t.data_transacao DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByAccount: %w", err)
	}
	defer rows.Close()

	var result []StatementRow
	for rows.Next() {
		var sr StatementRow
		err := rows.Scan(
			&sr.ID, &sr.Reference, &sr.SourceID, &sr.DestinationID,
			&sr.Kind, &sr.Amount, &sr.Description, &sr.CreatedAt, &sr.Status,
			&sr.SourceNumber, &sr.DestinationNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("ListByAccount: scan: %w", err)
		}
		result = append(result, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByAccount: rows: %w", err)
	}
	return result, nil
}

func scanTransaction(s scanner) (*domain.Transaction, error) {
	var t domain.Transaction
	err := s.Scan(
		&t.ID, &t.Reference, &t.SourceID, &t.DestinationID,
		&t.Kind, &t.Amount, &t.Description, &t.CreatedAt, &t.Status,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
