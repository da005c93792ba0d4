package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizops-backend/models"
	"bizops-backend/routes"
	"bizops-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopNotifier struct{}

func (noopNotifier) Send(recipients []string, subject, body string) error { return nil }

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.PurchaseOrder{},
		&models.Invoice{},
		&models.Payment{},
		&models.Agreement{},
	))
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	renewals := services.NewRenewalService(db, noopNotifier{})
	return routes.SetupRouter(db, renewals), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createID(t *testing.T, w *httptest.ResponseRecorder) string {
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func createCustomer(t *testing.T, r *gin.Engine, name string) string {
	return createID(t, doJSON(t, r, http.MethodPost, "/api/customers", gin.H{"name": name}))
}

func createPO(t *testing.T, r *gin.Engine, customerID string, amount float64) string {
	return createID(t, doJSON(t, r, http.MethodPost, "/api/pos", gin.H{
		"po_number":   "PO-1001",
		"customer_id": customerID,
		"amount":      amount,
	}))
}

func createInvoice(t *testing.T, r *gin.Engine, poID, customerID string, amount, received float64) string {
	return createID(t, doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice_number":  "INV-1001",
		"po_id":           poID,
		"customer_id":     customerID,
		"amount":          amount,
		"amount_received": received,
	}))
}
