package ledger_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/memuow"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	ledgerapi "github.com/amirasaad/ledger/webapi/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *memuow.Store) {
	t.Helper()
	store := memuow.New()
	store.SeedAccount(1, 100000, 0)

	cfg := &config.App{
		Env:           "test",
		Server:        &config.Server{Port: 0},
		DB:            &config.DB{},
		StatementSize: 10,
	}
	a := app.New(&app.Deps{Uow: store, Logger: slog.Default()}, cfg)
	return webapi.SetupApp(a), store
}

func makeRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateOperation_Credit(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/1/transacoes",
		`{"valor": 1000, "tipo": "c", "descricao": "salary"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[ledgerapi.CreateOperationResponse](t, resp)
	assert.Equal(t, int64(100000), body.Limit)
	assert.Equal(t, int64(1000), body.Balance)
}

func TestCreateOperation_DebitToFloor(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/1/transacoes",
		`{"valor": 100000, "tipo": "d", "descricao": "all-in"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[ledgerapi.CreateOperationResponse](t, resp)
	assert.Equal(t, int64(-100000), body.Balance)
}

func TestCreateOperation_LimitExceeded(t *testing.T) {
	app, store := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/1/transacoes",
		`{"valor": 100001, "tipo": "d", "descricao": "toomuch"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	account, ops, ok := store.Dump(1)
	require.True(t, ok)
	assert.Equal(t, int64(0), account.Balance)
	assert.Empty(t, ops)
}

func TestCreateOperation_ValidationErrors(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing value", `{"tipo": "c", "descricao": "x"}`},
		{"negative value", `{"valor": -5, "tipo": "c", "descricao": "x"}`},
		{"fractional value", `{"valor": 1.2, "tipo": "d", "descricao": "x"}`},
		{"unknown kind", `{"valor": 10, "tipo": "x", "descricao": "x"}`},
		{"empty description", `{"valor": 10, "tipo": "c", "descricao": ""}`},
		{"long description", fmt.Sprintf(`{"valor": 10, "tipo": "c", "descricao": %q}`, strings.Repeat("a", 11))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := makeRequest(t, app, "POST", "/clientes/1/transacoes", tc.body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
			resp.Body.Close() //nolint: errcheck
		})
	}
}

func TestCreateOperation_UnknownAccount(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/42/transacoes",
		`{"valor": 10, "tipo": "c", "descricao": "x"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func TestCreateOperation_NonIntegerAccountID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/abc/transacoes",
		`{"valor": 10, "tipo": "c", "descricao": "x"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func TestGetStatement_RoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "POST", "/clientes/1/transacoes",
		`{"valor": 800, "tipo": "d", "descricao": "groceries"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = makeRequest(t, app, "POST", "/clientes/1/transacoes",
		`{"valor": 300, "tipo": "c", "descricao": "refund"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = makeRequest(t, app, "GET", "/clientes/1/extrato", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	st := decodeBody[ledgerapi.StatementResponse](t, resp)
	assert.Equal(t, int64(-500), st.Balance.Total)
	assert.Equal(t, int64(100000), st.Balance.Limit)
	assert.False(t, st.Balance.QueriedAt.IsZero())
	require.Len(t, st.LastOperations, 2)
	assert.Equal(t, "refund", st.LastOperations[0].Description)
	assert.Equal(t, "c", st.LastOperations[0].Kind)
	assert.Equal(t, "groceries", st.LastOperations[1].Description)
	assert.Equal(t, "d", st.LastOperations[1].Kind)
}

func TestGetStatement_UnknownAccount(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "GET", "/clientes/42/extrato", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := makeRequest(t, app, "GET", "/", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck
}
