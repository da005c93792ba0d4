// services/derived.go
package services

import (
	"time"

	"bizops-backend/models"
	"bizops-backend/utils"
)

// InvoiceStatus derives the payment status of an invoice from its amount
// and the total received so far. Over-collection still reads as Paid.
func InvoiceStatus(amount, received float64) string {
	switch {
	case received <= 0:
		return models.PaymentStatusPending
	case received < amount:
		return models.PaymentStatusPartial
	default:
		return models.PaymentStatusPaid
	}
}

// InvoiceBalance is the outstanding amount on an invoice, floored at zero.
func InvoiceBalance(amount, received float64) float64 {
	if balance := amount - received; balance > 0 {
		return balance
	}
	return 0
}

// POBilled sums the invoiced amount raised against a purchase order and
// returns the remaining balance, floored at zero when over-billed. Billed
// counts invoiced amount, not collected amount.
func POBilled(po models.PurchaseOrder, invoices []models.Invoice) (billed, balance float64) {
	for _, inv := range invoices {
		if inv.POID == po.ID {
			billed += inv.Amount
		}
	}
	balance = po.Amount - billed
	if balance < 0 {
		balance = 0
	}
	return billed, balance
}

// RenewalWindowDays is how long before an agreement's end date renewal
// action is expected.
const RenewalWindowDays = 30

// AgreementRenewal computes the renewal due date and status for an
// agreement ending on endDate (YYYY-MM-DD). ok is false when endDate is
// absent or malformed, in which case no renewal fields apply.
func AgreementRenewal(endDate string, today time.Time) (renewalDue time.Time, status string, ok bool) {
	end, ok := utils.ParseDate(endDate)
	if !ok {
		return time.Time{}, "", false
	}

	day := utils.DateOnly(today)
	renewalDue = end.AddDate(0, 0, -RenewalWindowDays)

	switch {
	case end.Before(day):
		status = models.RenewalStatusExpired
	case !renewalDue.After(day) && !day.After(end):
		status = models.RenewalStatusDue
	default:
		status = models.RenewalStatusActive
	}
	return renewalDue, status, true
}
