package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records money received against an invoice. Payments are
// immutable once created; there is no update or delete path.
type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PaymentRef string    `gorm:"not null" json:"payment_id"`
	InvoiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"invoice_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Date       string    `json:"date"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Mode       string    `json:"mode"`
	Remarks    string    `json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
