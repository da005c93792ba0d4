package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the root entity; purchase orders, invoices, agreements and
// payments all reference it by id.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Industry      string    `json:"industry"`
	TaxID         string    `json:"tax_id"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`

	CompanyProfileURL         string `gorm:"column:company_profile_url" json:"company_profile_url"`
	KYCURL                    string `gorm:"column:kyc_url" json:"kyc_url"`
	MasterServiceAgreementURL string `gorm:"column:master_service_agreement_url" json:"master_service_agreement_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
