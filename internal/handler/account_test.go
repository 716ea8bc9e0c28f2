package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contabank/api/internal/domain"
)

type mockAccountService struct {
	account  *domain.Account
	accounts []domain.Account
	err      error
}

func (m *mockAccountService) CreateAccount(_ context.Context, _, _ string, _ decimal.Decimal) (*domain.Account, error) {
	return m.account, m.err
}

func (m *mockAccountService) ListAccounts(_ context.Context) ([]domain.Account, error) {
	return m.accounts, m.err
}

func (m *mockAccountService) GetAccount(_ context.Context, _ int64) (*domain.Account, error) {
	return m.account, m.err
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:            1,
		AccountNumber: "000001",
		Holder:        "Maria Silva",
		CPF:           "12345678901",
		Balance:       decimal.RequireFromString("1500.50"),
		CreatedAt:     time.Now().UTC(),
		Active:        true,
	}
}

func TestCreateAccountHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{account: testAccount()})

		rec, resp := postJSON(t, h.Create,
			`{"titular": "Maria Silva", "cpf": "12345678901", "saldo_inicial": 1500.50}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "000001", data["numero_conta"])
		assert.Equal(t, "Maria Silva", data["titular"])
		assert.Equal(t, 1500.5, data["saldo"])
		assert.Equal(t, true, data["ativo"])
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{})

		rec, resp := postJSON(t, h.Create, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	})

	t.Run("duplicate cpf maps to 400", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{err: domain.ErrDuplicateCPF})

		rec, resp := postJSON(t, h.Create,
			`{"titular": "Maria Silva", "cpf": "12345678901"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DUPLICATE_CPF", resp.Error.Code)
	})
}

func TestGetAccountHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{account: testAccount()})

		req := httptest.NewRequest(http.MethodGet, "/contas/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{err: domain.ErrAccountNotFound})

		req := httptest.NewRequest(http.MethodGet, "/contas/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		h := NewAccountHandler(&mockAccountService{})

		req := httptest.NewRequest(http.MethodGet, "/contas/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListAccountsHandler(t *testing.T) {
	h := NewAccountHandler(&mockAccountService{
		accounts: []domain.Account{*testAccount()},
	})

	req := httptest.NewRequest(http.MethodGet, "/contas", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	assert.Len(t, resp.Data.([]any), 1)
}
