// controllers/customer.go
package controllers

import (
	"net/http"

	"bizops-backend/models"
	"bizops-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CustomerController handles customer records.
type CustomerController struct {
	DB *gorm.DB
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Industry      string `json:"industry"`
	TaxID         string `json:"tax_id"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`

	CompanyProfileURL         string `json:"company_profile_url"`
	KYCURL                    string `json:"kyc_url"`
	MasterServiceAgreementURL string `json:"master_service_agreement_url"`
}

// CreateCustomer creates a new customer record
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Industry:      input.Industry,
		TaxID:         input.TaxID,
		Address:       input.Address,
		Notes:         input.Notes,

		CompanyProfileURL:         input.CompanyProfileURL,
		KYCURL:                    input.KYCURL,
		MasterServiceAgreementURL: input.MasterServiceAgreementURL,
	}

	if err := ctl.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": customer.ID})
}

// GetCustomers retrieves all customers, newest first
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := ctl.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}
