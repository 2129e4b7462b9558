package billingservice

import (
	"testing"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassifyPayment(t *testing.T) {
	tests := []struct {
		paid, due string
		expected  domain.PaymentType
	}{
		{"0", "1000", domain.PaymentTypeNone},
		{"1", "1000", domain.PaymentTypePartial},
		{"499.99", "1000", domain.PaymentTypePartial},
		{"500", "1000", domain.PaymentTypeMinimum},
		{"999.99", "1000", domain.PaymentTypeMinimum},
		{"1000", "1000", domain.PaymentTypeComplete},
		{"1500", "1000", domain.PaymentTypeComplete},
		{"0", "0", domain.PaymentTypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.paid+"/"+tt.due, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPayment(d(tt.paid), d(tt.due)))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	dueDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		paid, due string
		today     time.Time
		expected  domain.PaymentStatus
	}{
		{"Nothing paid before due date", "0", "1000", time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), domain.PaymentPending},
		{"Nothing paid on due date", "0", "1000", time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), domain.PaymentPending},
		{"Nothing paid after due date", "0", "1000", time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC), domain.PaymentOverdue},
		{"Partially paid after due date", "10", "1000", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), domain.PaymentPartial},
		{"Paid in full", "1000", "1000", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), domain.PaymentPaid},
		{"Overpaid", "1200", "1000", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(d(tt.paid), d(tt.due), dueDate, tt.today))
		})
	}
}

func TestDefaultDueDate(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), DefaultDueDate(2, 2024))
	assert.Equal(t, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), DefaultDueDate(12, 2025))
}

func cents(t *rapid.T, label string) decimal.Decimal {
	return decimal.New(rapid.Int64Range(0, 10_000_000).Draw(t, label), -2)
}

func TestLedgerProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		due := cents(t, "due")
		paid := cents(t, "paid")
		dueDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		today := dueDate.AddDate(0, 0, rapid.IntRange(-60, 60).Draw(t, "days"))

		balance := Balance(due, paid)
		if balance.IsNegative() {
			t.Fatalf("negative balance %s", balance)
		}
		if !balance.Add(decimal.Min(paid, due)).Equal(due) {
			t.Fatalf("balance %s plus covered amount does not add up to due %s", balance, due)
		}

		typ := ClassifyPayment(paid, due)
		status := DeriveStatus(paid, due, dueDate, today)
		switch {
		case paid.IsZero():
			if typ != domain.PaymentTypeNone {
				t.Fatalf("nothing paid classified as %s", typ)
			}
		case paid.GreaterThanOrEqual(due):
			if typ != domain.PaymentTypeComplete {
				t.Fatalf("full payment classified as %s", typ)
			}
		}
		if (status == domain.PaymentPaid) != paid.GreaterThanOrEqual(due) {
			t.Fatalf("status %s for paid %s due %s", status, paid, due)
		}
		if status == domain.PaymentPaid && !balance.IsZero() {
			t.Fatalf("paid status with balance %s", balance)
		}
		if status == domain.PaymentOverdue && (!paid.IsZero() || !today.After(dueDate)) {
			t.Fatalf("overdue status for paid %s on %s", paid, today)
		}
	})
}

// Applying payments one by one never lowers the classification.
func TestClassificationIsMonotonic(t *testing.T) {
	rank := map[domain.PaymentType]int{
		domain.PaymentTypeNone:     0,
		domain.PaymentTypePartial:  1,
		domain.PaymentTypeMinimum:  2,
		domain.PaymentTypeComplete: 3,
	}
	rapid.Check(t, func(t *rapid.T) {
		due := cents(t, "due").Add(decimal.NewFromInt(1))
		paid := decimal.Zero
		prev := ClassifyPayment(paid, due)
		steps := rapid.IntRange(1, 10).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			paid = paid.Add(cents(t, "amount").Add(decimal.New(1, -2)))
			next := ClassifyPayment(paid, due)
			if rank[next] < rank[prev] {
				t.Fatalf("classification went from %s to %s", prev, next)
			}
			prev = next
		}
	})
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"100.50", true},
		{"9999999999.99", true},
		{"0.001", false},
		{"10000000000", false},
		{"10000000000000", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}
