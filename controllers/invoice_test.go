package controllers_test

import (
	"net/http"
	"testing"

	"bizops-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceListEntry struct {
	ID             string  `json:"id"`
	Amount         float64 `json:"amount"`
	AmountReceived float64 `json:"amount_received"`
	PaymentStatus  string  `json:"payment_status"`
	BalanceAmount  float64 `json:"balance_amount"`
}

func TestCreateInvoiceNormalizesStatus(t *testing.T) {
	r, _ := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")
	poID := createPO(t, r, custID, 5000)

	tests := []struct {
		amount, received float64
		wantStatus       string
		wantBalance      float64
	}{
		{1000, 0, models.PaymentStatusPending, 1000},
		{1000, 400, models.PaymentStatusPartial, 600},
		{1000, 1000, models.PaymentStatusPaid, 0},
		{1000, 1200, models.PaymentStatusPaid, 0},
	}

	for _, tt := range tests {
		id := createInvoice(t, r, poID, custID, tt.amount, tt.received)

		var invoices []invoiceListEntry
		decodeBody(t, doGET(t, r, "/api/invoices?po_id="+poID), &invoices)

		var found *invoiceListEntry
		for i := range invoices {
			if invoices[i].ID == id {
				found = &invoices[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, tt.wantStatus, found.PaymentStatus)
		assert.Equal(t, tt.wantBalance, found.BalanceAmount)
	}
}

func TestInvoiceStatusRecomputedOnRead(t *testing.T) {
	r, db := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")
	poID := createPO(t, r, custID, 5000)
	invID := createInvoice(t, r, poID, custID, 1000, 0)

	// Corrupt the stored snapshot; the read path must not trust it.
	require.NoError(t, db.Model(&models.Invoice{}).
		Where("id = ?", invID).
		Update("payment_status", models.PaymentStatusPaid).Error)

	var invoices []invoiceListEntry
	decodeBody(t, doGET(t, r, "/api/invoices"), &invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, models.PaymentStatusPending, invoices[0].PaymentStatus)
	assert.Equal(t, 1000.0, invoices[0].BalanceAmount)
}

func TestCreateInvoiceReferenceErrors(t *testing.T) {
	r, _ := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")
	poID := createPO(t, r, custID, 5000)

	w := doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice_number": "INV-1", "po_id": "garbage", "customer_id": custID, "amount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice_number": "INV-1", "po_id": uuid.NewString(), "customer_id": custID, "amount": 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/invoices", gin.H{
		"invoice_number": "INV-1", "po_id": poID, "customer_id": uuid.NewString(), "amount": 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceCustomerFilter(t *testing.T) {
	r, _ := setupRouter(t)
	custA := createCustomer(t, r, "Alpha")
	custB := createCustomer(t, r, "Beta")
	poA := createPO(t, r, custA, 1000)
	poB := createPO(t, r, custB, 1000)
	createInvoice(t, r, poA, custA, 100, 0)
	createInvoice(t, r, poB, custB, 200, 0)

	var invoices []invoiceListEntry
	decodeBody(t, doGET(t, r, "/api/invoices?customer_id="+custB), &invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, 200.0, invoices[0].Amount)
}
