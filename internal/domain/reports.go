package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Optional marks a field of a partial update. Only fields with Set are applied.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// PaymentPatch is an administrative correction of a payment.
type PaymentPatch struct {
	AmountDue     Optional[decimal.Decimal]
	AmountPaid    Optional[decimal.Decimal]
	DueDate       Optional[time.Time]
	PaymentMethod Optional[string]
	PaymentDate   Optional[time.Time]
	Notes         Optional[string]
}

type Eligibility struct {
	MemberID        int
	Name            string
	IsMember        bool
	Status          MemberStatus
	IsEnabled       bool
	Reason          string
	MaxDebtMonths   int
	PendingMonths   int
	TotalDebt       decimal.Decimal
	PendingPayments []Payment
}

type MonthlySummary struct {
	Month          int
	Year           int
	TotalPayments  int
	PaidCount      int
	PartialCount   int
	PendingCount   int
	OverdueCount   int
	TotalExpected  decimal.Decimal
	TotalCollected decimal.Decimal
	TotalPending   decimal.Decimal
}

type DebtorFilter struct {
	Status    *PaymentStatus
	MinDebt   *decimal.Decimal
	MinMonths *int
}

type Debtor struct {
	MemberID      int
	FirstName     string
	LastName      string
	IsMember      bool
	CategoryName  string
	PendingMonths int
	TotalDebt     decimal.Decimal
	OldestPeriod  string
	NewestPeriod  string
}

type DebtorsReport struct {
	TotalDebtors int
	TotalDebt    decimal.Decimal
	Debtors      []Debtor
}

type SalesSummary struct {
	TotalOrders     int
	PendingOrders   int
	PaidOrders      int
	DeliveredOrders int
	CancelledOrders int
	TotalSales      decimal.Decimal
	ConfirmedSales  decimal.Decimal
}
