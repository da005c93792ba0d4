package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	POStatusActive          = "Active"
	POStatusClosed          = "Closed"
	POStatusPartiallyBilled = "Partially Billed"
)

// PurchaseOrder is a customer's commitment to buy up to a nominal amount,
// billed incrementally via invoices. billed_amount and po_balance are never
// persisted; they are computed from the current invoices on every read.
type PurchaseOrder struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PONumber    string    `gorm:"column:po_number;not null" json:"po_number"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	PODate      string    `gorm:"column:po_date" json:"po_date"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	Validity    string    `json:"validity"`
	Status      string    `gorm:"default:'Active'" json:"status"`

	POPDFURL string `gorm:"column:po_pdf_url" json:"po_pdf_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
