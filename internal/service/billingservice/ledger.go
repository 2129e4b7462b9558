package billingservice

import (
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
)

const defaultDueDay = 10

var (
	minimumShare = decimal.NewFromFloat(0.5)
	// maxAmount is the largest value a NUMERIC(12,2) column holds.
	maxAmount = decimal.RequireFromString("9999999999.99")
)

// ValidAmount reports whether a fits a money column: at most two decimals and
// no larger than maxAmount.
func ValidAmount(a decimal.Decimal) bool {
	return a.Equal(a.Round(2)) && a.Abs().LessThanOrEqual(maxAmount)
}

// ClassifyPayment tells how much of the amount due has been covered.
func ClassifyPayment(paid, due decimal.Decimal) domain.PaymentType {
	switch {
	case paid.IsZero():
		return domain.PaymentTypeNone
	case paid.GreaterThanOrEqual(due):
		return domain.PaymentTypeComplete
	case paid.GreaterThanOrEqual(due.Mul(minimumShare)):
		return domain.PaymentTypeMinimum
	default:
		return domain.PaymentTypePartial
	}
}

// DeriveStatus is recomputed on every change; nothing about it is stored
// beyond the result. Dates are compared by calendar day.
func DeriveStatus(paid, due decimal.Decimal, dueDate, today time.Time) domain.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(due):
		return domain.PaymentPaid
	case paid.IsPositive():
		return domain.PaymentPartial
	case dateOf(today).After(dateOf(dueDate)):
		return domain.PaymentOverdue
	default:
		return domain.PaymentPending
	}
}

// Balance floors at zero. Overpaid amounts are not carried as credit.
func Balance(due, paid decimal.Decimal) decimal.Decimal {
	b := due.Sub(paid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// DefaultDueDate is the 10th of the billing month.
func DefaultDueDate(month, year int) time.Time {
	return time.Date(year, time.Month(month), defaultDueDay, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// recompute refreshes the derived columns of p from its amounts and dates.
func recompute(p *domain.Payment, today time.Time) {
	p.Balance = Balance(p.AmountDue, p.AmountPaid)
	p.PaymentType = ClassifyPayment(p.AmountPaid, p.AmountDue)
	p.Status = DeriveStatus(p.AmountPaid, p.AmountDue, p.DueDate, today)
}
