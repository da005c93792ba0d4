// controllers/purchase_order.go
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

// PurchaseOrderController handles purchase orders.
type PurchaseOrderController struct {
	DB *gorm.DB
}

// CreatePOInput defines the expected JSON structure for creating a purchase order
type CreatePOInput struct {
	PONumber    string  `json:"po_number" binding:"required"`
	CustomerID  string  `json:"customer_id" binding:"required"`
	PODate      string  `json:"po_date"`
	Amount      float64 `json:"amount" binding:"min=0"`
	Description string  `json:"description"`
	Validity    string  `json:"validity"`
	Status      string  `json:"status" binding:"omitempty,oneof='Active' 'Closed' 'Partially Billed'"`
	POPDFURL    string  `json:"po_pdf_url"`
}

// POResponse is a purchase order plus its read-time billing figures.
type POResponse struct {
	models.PurchaseOrder
	BilledAmount float64 `json:"billed_amount"`
	POBalance    float64 `json:"po_balance"`
}

// CreatePO creates a purchase order after resolving its customer reference
func (ctl *PurchaseOrderController) CreatePO(c *gin.Context) {
	var input CreatePOInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := services.ResolveCustomer(ctl.DB, input.CustomerID)
	if err != nil {
		respondReferenceError(c, err, "customer_id", "Customer")
		return
	}

	status := input.Status
	if status == "" {
		status = models.POStatusActive
	}

	po := models.PurchaseOrder{
		PONumber:    input.PONumber,
		CustomerID:  customer.ID,
		PODate:      input.PODate,
		Amount:      input.Amount,
		Description: input.Description,
		Validity:    input.Validity,
		Status:      status,
		POPDFURL:    input.POPDFURL,
	}

	if err := ctl.DB.Create(&po).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create purchase order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": po.ID})
}

// GetPOs lists purchase orders, optionally for one customer, with billed
// amount and remaining balance computed from the current invoices.
func (ctl *PurchaseOrderController) GetPOs(c *gin.Context) {
	query := ctl.DB.Order("created_at DESC")
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		query = query.Where("customer_id = ?", customerID)
	}

	var pos []models.PurchaseOrder
	if err := query.Find(&pos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve purchase orders")
		return
	}

	out := make([]POResponse, 0, len(pos))
	for _, po := range pos {
		var invoices []models.Invoice
		if err := ctl.DB.Where("po_id = ?", po.ID).Find(&invoices).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		billed, balance := services.POBilled(po, invoices)
		out = append(out, POResponse{PurchaseOrder: po, BilledAmount: billed, POBalance: balance})
	}

	c.JSON(http.StatusOK, out)
}
