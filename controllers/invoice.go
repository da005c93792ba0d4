// controllers/invoice.go
package controllers

import (
	"net/http"

	"bizops-backend/models"
	"bizops-backend/services"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceController handles invoices raised against purchase orders.
type InvoiceController struct {
	DB *gorm.DB
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	InvoiceNumber  string  `json:"invoice_number" binding:"required"`
	POID           string  `json:"po_id" binding:"required"`
	CustomerID     string  `json:"customer_id" binding:"required"`
	InvoiceDate    string  `json:"invoice_date"`
	DueDate        string  `json:"due_date"`
	Amount         float64 `json:"amount" binding:"min=0"`
	AmountReceived float64 `json:"amount_received" binding:"min=0"`

	ModeOfPayment   string `json:"mode_of_payment"`
	PaymentTimeline string `json:"payment_timeline"`

	InvoicePDFURL     string `json:"invoice_pdf_url"`
	ProofOfPaymentURL string `json:"proof_of_payment_url"`
}

// InvoiceResponse is an invoice plus its read-time balance. The stored
// payment status is overwritten by a fresh computation before it leaves
// the API.
type InvoiceResponse struct {
	models.Invoice
	BalanceAmount float64 `json:"balance_amount"`
}

// CreateInvoice creates an invoice after resolving its PO and customer
// references, normalizing the payment status from the current amounts.
func (ctl *InvoiceController) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	po, err := services.ResolvePurchaseOrder(ctl.DB, input.POID)
	if err != nil {
		respondReferenceError(c, err, "po_id", "PO")
		return
	}

	customer, err := services.ResolveCustomer(ctl.DB, input.CustomerID)
	if err != nil {
		respondReferenceError(c, err, "customer_id", "Customer")
		return
	}

	invoice := models.Invoice{
		InvoiceNumber:  input.InvoiceNumber,
		POID:           po.ID,
		CustomerID:     customer.ID,
		InvoiceDate:    input.InvoiceDate,
		DueDate:        input.DueDate,
		Amount:         input.Amount,
		AmountReceived: input.AmountReceived,
		PaymentStatus:  services.InvoiceStatus(input.Amount, input.AmountReceived),

		ModeOfPayment:   input.ModeOfPayment,
		PaymentTimeline: input.PaymentTimeline,

		InvoicePDFURL:     input.InvoicePDFURL,
		ProofOfPaymentURL: input.ProofOfPaymentURL,
	}

	if err := ctl.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": invoice.ID})
}

// GetInvoices lists invoices, optionally filtered by PO or customer, with
// payment status and balance recomputed from the stored amounts.
func (ctl *InvoiceController) GetInvoices(c *gin.Context) {
	query := ctl.DB.Order("created_at DESC")
	if raw := c.Query("po_id"); raw != "" {
		poID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid po_id")
			return
		}
		query = query.Where("po_id = ?", poID)
	}
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		query = query.Where("customer_id = ?", customerID)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		inv.PaymentStatus = services.InvoiceStatus(inv.Amount, inv.AmountReceived)
		out = append(out, InvoiceResponse{
			Invoice:       inv,
			BalanceAmount: services.InvoiceBalance(inv.Amount, inv.AmountReceived),
		})
	}

	c.JSON(http.StatusOK, out)
}
