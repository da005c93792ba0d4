package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AgreementTypeAgreement = "Agreement"
	AgreementTypeNDA       = "NDA"
)

const (
	RenewalStatusActive  = "Active"
	RenewalStatusDue     = "Due"
	RenewalStatusExpired = "Expired"
)

// Agreement is a contract or NDA with a customer. renewal_due and
// renewal_status are persisted as hints at write time and recomputed from
// end_date on every read. Agreements without an end date carry no renewal
// fields at all.
type Agreement struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Type         string    `gorm:"default:'Agreement'" json:"type"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TermsSummary string    `json:"terms_summary"`

	RenewalDue    string `json:"renewal_due,omitempty"`
	RenewalStatus string `json:"renewal_status,omitempty"`

	SignedCopyURL string `gorm:"column:signed_copy_url" json:"signed_copy_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Agreement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
