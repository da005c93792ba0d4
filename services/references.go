// services/references.go
package services

import (
	"errors"

	"bizops-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidReference marks a reference id that is not a well-formed uuid.
	ErrInvalidReference = errors.New("invalid reference id")
	// ErrReferenceMissing marks a well-formed reference with no matching record.
	ErrReferenceMissing = errors.New("referenced record not found")
)

// ResolveCustomer fetches the customer a dependent record points at.
// Creates of POs, invoices, agreements and payments must resolve all of
// their references before anything is written.
func ResolveCustomer(db *gorm.DB, rawID string) (*models.Customer, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	var customer models.Customer
	if err := db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceMissing
		}
		return nil, err
	}
	return &customer, nil
}

// ResolvePurchaseOrder fetches the purchase order an invoice points at.
func ResolvePurchaseOrder(db *gorm.DB, rawID string) (*models.PurchaseOrder, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	var po models.PurchaseOrder
	if err := db.First(&po, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceMissing
		}
		return nil, err
	}
	return &po, nil
}

// ResolveInvoice fetches the invoice a payment points at.
func ResolveInvoice(db *gorm.DB, rawID string) (*models.Invoice, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferenceMissing
		}
		return nil, err
	}
	return &invoice, nil
}
