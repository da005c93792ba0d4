// controllers/payment.go
package controllers

import (
	"net/http"
	"time"

	"bizops-backend/models"
	"bizops-backend/services"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentController handles payments against invoices. Payment creation
// is the only mutator of an invoice's amount_received.
type PaymentController struct {
	DB *gorm.DB
}

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	PaymentRef string  `json:"payment_id" binding:"required"`
	InvoiceID  string  `json:"invoice_id" binding:"required"`
	CustomerID string  `json:"customer_id" binding:"required"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount" binding:"min=0"`
	Mode       string  `json:"mode"`
	Remarks    string  `json:"remarks"`
}

// CreatePayment records a payment and rolls the invoice's received total
// and payment status forward.
func (ctl *PaymentController) CreatePayment(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := services.ResolveInvoice(ctl.DB, input.InvoiceID)
	if err != nil {
		respondReferenceError(c, err, "invoice_id", "Invoice")
		return
	}

	customer, err := services.ResolveCustomer(ctl.DB, input.CustomerID)
	if err != nil {
		respondReferenceError(c, err, "customer_id", "Customer")
		return
	}

	payment := models.Payment{
		PaymentRef: input.PaymentRef,
		InvoiceID:  invoice.ID,
		CustomerID: customer.ID,
		Date:       input.Date,
		Amount:     input.Amount,
		Mode:       input.Mode,
		Remarks:    input.Remarks,
	}

	if err := ctl.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	// Re-aggregate from every payment on the invoice rather than
	// incrementing, so a racing writer is corrected by the next payment.
	var totalReceived float64
	if err := ctl.DB.Model(&models.Payment{}).
		Where("invoice_id = ?", invoice.ID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalReceived).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice totals")
		return
	}

	status := services.InvoiceStatus(invoice.Amount, totalReceived)

	if err := ctl.DB.Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"amount_received": totalReceived,
			"payment_status":  status,
			"updated_at":      time.Now().UTC(),
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice totals")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                      payment.ID,
		"invoice_amount_received": totalReceived,
		"invoice_status":          status,
	})
}

// GetPayments lists payments, optionally for one invoice
func (ctl *PaymentController) GetPayments(c *gin.Context) {
	query := ctl.DB.Order("created_at DESC")
	if raw := c.Query("invoice_id"); raw != "" {
		invoiceID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice_id")
			return
		}
		query = query.Where("invoice_id = ?", invoiceID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
