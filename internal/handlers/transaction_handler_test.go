package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "balanco/internal/errors"
	"balanco/internal/models"
	"balanco/internal/services"
	"balanco/internal/uuid"
	"balanco/internal/validator"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(kind models.TransactionKind, amount float64, category, description, date string, isRecurring bool) (*models.Transaction, error)
	listTransactionsFn  func() []models.Transaction
	updateTransactionFn func(t models.Transaction) (*models.Transaction, error)
	deleteTransactionFn func(id string) error
}

func (m *mockTransactionService) CreateTransaction(kind models.TransactionKind, amount float64, category, description, date string, isRecurring bool) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(kind, amount, category, description, date, isRecurring)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions() []models.Transaction {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn()
	}
	return []models.Transaction{}
}

func (m *mockTransactionService) UpdateTransaction(t models.Transaction) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(t)
	}
	return &t, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.PUT("/transactions/:id", handler.UpdateTransaction)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(kind models.TransactionKind, amount float64, category, description, date string, isRecurring bool) (*models.Transaction, error) {
				return &models.Transaction{
					ID:       uuid.New(),
					Kind:     kind,
					Amount:   amount,
					Category: category,
					Date:     date,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":45.9,"category":"groceries","date":"2025-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["category"] != "groceries" {
			t.Errorf("expected groceries, got %v", tx["category"])
		}
		if tx["amount"] != 45.9 {
			t.Errorf("expected 45.9, got %v", tx["amount"])
		}
	})

	t.Run("returns 400 on missing date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":45.9,"category":"groceries"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"refund","amount":45.9,"category":"groceries","date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"expense","amount":-5,"category":"groceries","date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("returns the whole ledger", func(t *testing.T) {
		svc := &mockTransactionService{
			listTransactionsFn: func() []models.Transaction {
				return []models.Transaction{
					{ID: uuid.New(), Kind: models.TransactionExpense, Amount: 10, Category: "misc", Date: "2025-03-01"},
					{ID: uuid.New(), Kind: models.TransactionIncome, Amount: 20, Category: "misc", Date: "2025-03-02"},
				}
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		list := result["transactions"].([]interface{})
		if len(list) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(list))
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 200 and passes the path id through", func(t *testing.T) {
		id := uuid.New()
		var gotID string
		svc := &mockTransactionService{
			updateTransactionFn: func(tx models.Transaction) (*models.Transaction, error) {
				gotID = tx.ID
				return &tx, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+id,
			`{"type":"expense","amount":60,"category":"groceries","date":"2025-03-01","isRecurring":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != id {
			t.Errorf("expected service to receive id %q, got %q", id, gotID)
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "PUT", "/transactions/not-a-uuid",
			`{"type":"expense","amount":60,"category":"groceries","date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when the transaction does not exist", func(t *testing.T) {
		svc := &mockTransactionService{
			updateTransactionFn: func(_ models.Transaction) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "PUT", "/transactions/"+uuid.New(),
			`{"type":"expense","amount":60,"category":"groceries","date":"2025-03-01"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, "DELETE", "/transactions/"+uuid.New(), "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when the transaction does not exist", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteTransactionFn: func(_ string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, "DELETE", "/transactions/"+uuid.New(), "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
