// controllers/dashboard.go
package controllers

import (
	"math"
	"net/http"
	"time"

	"bizops-backend/models"
	"bizops-backend/services"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardController serves cross-entity summary statistics, computed
// fresh on every request.
type DashboardController struct {
	DB *gorm.DB
}

// DashboardTotals carries the headline counts and the total outstanding
// amount across all invoices.
type DashboardTotals struct {
	PurchaseOrders    int64   `json:"purchase_orders"`
	Invoices          int64   `json:"invoices"`
	PaidInvoices      int64   `json:"paid_invoices"`
	PartialInvoices   int64   `json:"partial_invoices"`
	PendingInvoices   int64   `json:"pending_invoices"`
	OutstandingAmount float64 `json:"outstanding_amount"`
}

// GetDashboardSummary scans the collections and aggregates totals,
// renewal horizons and POs still awaiting invoices.
func (ctl *DashboardController) GetDashboardSummary(c *gin.Context) {
	var totalPOs, totalInvoices int64
	if err := ctl.DB.Model(&models.PurchaseOrder{}).Count(&totalPOs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if err := ctl.DB.Model(&models.Invoice{}).Count(&totalInvoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var invoices []models.Invoice
	if err := ctl.DB.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var paid, partial, pending int64
	var outstanding float64
	for _, inv := range invoices {
		switch services.InvoiceStatus(inv.Amount, inv.AmountReceived) {
		case models.PaymentStatusPaid:
			paid++
		case models.PaymentStatusPartial:
			partial++
		default:
			pending++
		}
		outstanding += services.InvoiceBalance(inv.Amount, inv.AmountReceived)
	}

	// One scan per horizon.
	upcoming := gin.H{
		"60": ctl.agreementsDueWithin(60),
		"30": ctl.agreementsDueWithin(30),
		"7":  ctl.agreementsDueWithin(7),
	}

	var pos []models.PurchaseOrder
	if err := ctl.DB.Find(&pos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var upcomingInvoicePOs int64
	for _, po := range pos {
		var invs []models.Invoice
		if err := ctl.DB.Where("po_id = ?", po.ID).Find(&invs).Error; err != nil {
			continue
		}
		if _, balance := services.POBilled(po, invs); balance > 0 {
			upcomingInvoicePOs++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": DashboardTotals{
			PurchaseOrders:  totalPOs,
			Invoices:        totalInvoices,
			PaidInvoices:    paid,
			PartialInvoices: partial,
			PendingInvoices: pending,
			// Rounded only at the output boundary.
			OutstandingAmount: math.Round(outstanding*100) / 100,
		},
		"upcoming":              upcoming,
		"upcoming_invoices_pos": upcomingInvoicePOs,
	})
}

func (ctl *DashboardController) agreementsDueWithin(days int) int64 {
	today := utils.DateOnly(time.Now())
	upper := today.AddDate(0, 0, days)

	var agreements []models.Agreement
	if err := ctl.DB.Find(&agreements).Error; err != nil {
		return 0
	}

	var count int64
	for _, a := range agreements {
		end, ok := utils.ParseDate(a.EndDate)
		if !ok {
			continue
		}
		if !end.Before(today) && !end.After(upper) {
			count++
		}
	}
	return count
}
