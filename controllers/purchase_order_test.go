package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poListEntry struct {
	ID           string  `json:"id"`
	PONumber     string  `json:"po_number"`
	Amount       float64 `json:"amount"`
	BilledAmount float64 `json:"billed_amount"`
	POBalance    float64 `json:"po_balance"`
}

func TestPOBalanceFloorsAtZero(t *testing.T) {
	r, _ := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")
	poID := createPO(t, r, custID, 1000)

	createInvoice(t, r, poID, custID, 700, 0)
	createInvoice(t, r, poID, custID, 500, 0)

	w := doGET(t, r, "/api/pos")
	require.Equal(t, http.StatusOK, w.Code)

	var pos []poListEntry
	decodeBody(t, w, &pos)
	require.Len(t, pos, 1)
	assert.Equal(t, 1200.0, pos[0].BilledAmount)
	assert.Equal(t, 0.0, pos[0].POBalance)
}

func TestPOBalanceTracksInvoicing(t *testing.T) {
	r, _ := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")
	poID := createPO(t, r, custID, 1000)

	var pos []poListEntry
	decodeBody(t, doGET(t, r, "/api/pos"), &pos)
	require.Len(t, pos, 1)
	assert.Equal(t, 1000.0, pos[0].POBalance)

	createInvoice(t, r, poID, custID, 400, 0)
	decodeBody(t, doGET(t, r, "/api/pos"), &pos)
	assert.Equal(t, 400.0, pos[0].BilledAmount)
	assert.Equal(t, 600.0, pos[0].POBalance)
}

func TestPOCustomerFilter(t *testing.T) {
	r, _ := setupRouter(t)
	custA := createCustomer(t, r, "Alpha")
	custB := createCustomer(t, r, "Beta")
	createPO(t, r, custA, 100)
	createPO(t, r, custB, 200)

	var pos []poListEntry
	decodeBody(t, doGET(t, r, "/api/pos?customer_id="+custA), &pos)
	require.Len(t, pos, 1)
	assert.Equal(t, 100.0, pos[0].Amount)

	w := doGET(t, r, "/api/pos?customer_id=not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePOReferenceErrors(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/pos", gin.H{
		"po_number": "PO-1", "customer_id": "garbage", "amount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/pos", gin.H{
		"po_number": "PO-1", "customer_id": uuid.NewString(), "amount": 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePOStatusValidation(t *testing.T) {
	r, _ := setupRouter(t)
	custID := createCustomer(t, r, "Acme Corp")

	w := doJSON(t, r, http.MethodPost, "/api/pos", gin.H{
		"po_number": "PO-2", "customer_id": custID, "amount": 100, "status": "Bogus",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/pos", gin.H{
		"po_number": "PO-2", "customer_id": custID, "amount": 100, "status": "Partially Billed",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
