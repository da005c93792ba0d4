package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)

// Invoice bills part of a purchase order. amount_received is mutated only
// by payment creation, which re-aggregates every payment on the invoice.
// The stored payment_status is a snapshot; read paths recompute it.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"not null" json:"invoice_number"`
	POID          uuid.UUID `gorm:"column:po_id;type:uuid;index;not null" json:"po_id"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	InvoiceDate   string    `json:"invoice_date"`
	DueDate       string    `json:"due_date"`

	Amount         float64 `gorm:"not null" json:"amount"`
	AmountReceived float64 `gorm:"default:0" json:"amount_received"`
	PaymentStatus  string  `gorm:"default:'Pending'" json:"payment_status"`

	ModeOfPayment   string `json:"mode_of_payment"`
	PaymentTimeline string `json:"payment_timeline"`

	InvoicePDFURL     string `gorm:"column:invoice_pdf_url" json:"invoice_pdf_url"`
	ProofOfPaymentURL string `gorm:"column:proof_of_payment_url" json:"proof_of_payment_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
