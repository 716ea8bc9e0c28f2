package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contabank/api/internal/domain"
	"github.com/contabank/api/internal/service"
)

type mockStatementService struct {
	statement *domain.Statement
	query     service.StatementQuery
	err       error
}

func (m *mockStatementService) GetStatement(_ context.Context, q service.StatementQuery) (*domain.Statement, error) {
	m.query = q
	return m.statement, m.err
}

func TestStatementHandler(t *testing.T) {
	t.Run("query parameters are forwarded", func(t *testing.T) {
		mock := &mockStatementService{
			statement: &domain.Statement{Account: testAccount()},
		}
		h := NewStatementHandler(mock)

		req := httptest.NewRequest(http.MethodGet,
			"/extrato/1?limite=5&data_inicio=2024-01-01&data_fim=2024-06-30", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(1), mock.query.AccountID)
		require.NotNil(t, mock.query.Limit)
		assert.Equal(t, 5, *mock.query.Limit)
		assert.Equal(t, "2024-01-01", mock.query.DateFrom)
		assert.Equal(t, "2024-06-30", mock.query.DateTo)

		var resp APIResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		data := resp.Data.(map[string]any)

		period := data["periodo"].(map[string]any)
		assert.Equal(t, "2024-01-01", period["data_inicio"])
		assert.Equal(t, float64(0), data["total_transacoes"])
	})

	t.Run("explicit zero limit is forwarded, absent limit is not", func(t *testing.T) {
		mock := &mockStatementService{
			statement: &domain.Statement{Account: testAccount()},
		}
		h := NewStatementHandler(mock)

		req := httptest.NewRequest(http.MethodGet, "/extrato/1?limite=0", nil)
		req.SetPathValue("id", "1")
		h.Get(httptest.NewRecorder(), req)

		require.NotNil(t, mock.query.Limit)
		assert.Equal(t, 0, *mock.query.Limit)

		req = httptest.NewRequest(http.MethodGet, "/extrato/1", nil)
		req.SetPathValue("id", "1")
		h.Get(httptest.NewRecorder(), req)

		assert.Nil(t, mock.query.Limit)
	})

	t.Run("entries expose the derived fields", func(t *testing.T) {
		entry := domain.StatementEntry{
			Transaction:  domain.Transaction{Kind: domain.TransactionKindDeposit},
			Direction:    domain.MovementIn,
			Counterparty: domain.NoCounterparty,
			HighValue:    true,
		}
		h := NewStatementHandler(&mockStatementService{
			statement: &domain.Statement{
				Account: testAccount(),
				Entries: []domain.StatementEntry{entry},
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/extrato/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		var resp APIResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		data := resp.Data.(map[string]any)

		entries := data["transacoes"].([]any)
		require.Len(t, entries, 1)
		first := entries[0].(map[string]any)
		assert.Equal(t, "entrada", first["tipo_movimento"])
		assert.Equal(t, "N/A", first["conta_relacionada"])
		assert.Equal(t, true, first["valor_alto"])
	})

	t.Run("bad date maps to 400", func(t *testing.T) {
		h := NewStatementHandler(&mockStatementService{err: domain.ErrInvalidDateFormat})

		req := httptest.NewRequest(http.MethodGet, "/extrato/1?data_inicio=31-12-2024", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp APIResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "INVALID_DATE_FORMAT", resp.Error.Code)
	})

	t.Run("unknown account maps to 404", func(t *testing.T) {
		h := NewStatementHandler(&mockStatementService{err: domain.ErrAccountNotFound})

		req := httptest.NewRequest(http.MethodGet, "/extrato/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
