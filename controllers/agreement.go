// controllers/agreement.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"bizops-backend/models"
	"bizops-backend/services"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgreementController handles agreements and NDAs.
type AgreementController struct {
	DB       *gorm.DB
	Renewals *services.RenewalService
}

// CreateAgreementInput defines the expected JSON structure for creating an agreement
type CreateAgreementInput struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"omitempty,oneof=Agreement NDA"`
	CustomerID    string `json:"customer_id" binding:"required"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TermsSummary  string `json:"terms_summary"`
	SignedCopyURL string `json:"signed_copy_url"`
}

// CreateAgreement creates an agreement, snapshots its renewal window and
// schedules an asynchronous renewal check.
func (ctl *AgreementController) CreateAgreement(c *gin.Context) {
	var input CreateAgreementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := services.ResolveCustomer(ctl.DB, input.CustomerID)
	if err != nil {
		respondReferenceError(c, err, "customer_id", "Customer")
		return
	}

	agreementType := input.Type
	if agreementType == "" {
		agreementType = models.AgreementTypeAgreement
	}

	agreement := models.Agreement{
		Name:          input.Name,
		Type:          agreementType,
		CustomerID:    customer.ID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TermsSummary:  input.TermsSummary,
		SignedCopyURL: input.SignedCopyURL,
	}

	if due, status, ok := services.AgreementRenewal(input.EndDate, time.Now()); ok {
		agreement.RenewalDue = due.Format(utils.DateLayout)
		agreement.RenewalStatus = status
	}

	if err := ctl.DB.Create(&agreement).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create agreement")
		return
	}

	ctl.Renewals.Enqueue(agreement.ID)

	c.JSON(http.StatusCreated, gin.H{"id": agreement.ID})
}

// GetAgreements lists agreements with renewal fields recomputed from the
// stored end date. due_within_days keeps agreements whose end date falls
// between today and today+N; agreements without an end date pass through.
func (ctl *AgreementController) GetAgreements(c *gin.Context) {
	query := ctl.DB.Order("created_at DESC")
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer_id")
			return
		}
		query = query.Where("customer_id = ?", customerID)
	}

	dueWithinDays := -1
	if raw := c.Query("due_within_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid due_within_days")
			return
		}
		dueWithinDays = n
	}

	var agreements []models.Agreement
	if err := query.Find(&agreements).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve agreements")
		return
	}

	today := utils.DateOnly(time.Now())
	out := make([]models.Agreement, 0, len(agreements))
	for _, a := range agreements {
		if due, status, ok := services.AgreementRenewal(a.EndDate, today); ok {
			a.RenewalDue = due.Format(utils.DateLayout)
			a.RenewalStatus = status
		} else {
			a.RenewalDue = ""
			a.RenewalStatus = ""
		}

		if dueWithinDays >= 0 {
			if end, ok := utils.ParseDate(a.EndDate); ok {
				upper := today.AddDate(0, 0, dueWithinDays)
				if end.Before(today) || end.After(upper) {
					continue
				}
			}
		}

		out = append(out, a)
	}

	c.JSON(http.StatusOK, out)
}

// CheckRenewals schedules a renewal check for every agreement and reports
// how many were scheduled. Delivery happens out of band.
func (ctl *AgreementController) CheckRenewals(c *gin.Context) {
	checked, err := ctl.Renewals.CheckAll()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to scan agreements")
		return
	}

	c.JSON(http.StatusOK, gin.H{"checked": checked})
}
