package dto

import (
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
)

type BillPeriodRequestDTO struct {
	MemberID int     `json:"member_id" validate:"required,gt=0" example:"12"`
	Month    int     `json:"month" validate:"required,min=1,max=12" example:"3"`
	Year     int     `json:"year" validate:"required,min=2000,max=9999" example:"2024"`
	DueDate  *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-10"`
	Notes    *string `json:"notes,omitempty" example:"billed at the desk"`
}

type BulkBillRequestDTO struct {
	Month   int     `json:"month" validate:"required,min=1,max=12" example:"3"`
	Year    int     `json:"year" validate:"required,min=2000,max=9999" example:"2024"`
	DueDate *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-10"`
}

type BulkBillResponseDTO struct {
	Message string `json:"message" example:"Generated 40 payments"`
	Created int    `json:"created" example:"40"`
	Skipped int    `json:"skipped" example:"2"`
	Total   int    `json:"total_users" example:"42"`
}

type PaymentStatusResponseDTO struct {
	ID     int    `json:"id" example:"7"`
	Status string `json:"status" example:"vencido"`
}

type ApplyPaymentRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"1500"`
	PaymentMethod *string         `json:"payment_method,omitempty" example:"efectivo"`
	PaymentDate   *string         `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-05"`
	Notes         *string         `json:"notes,omitempty"`
}

type SetPaymentStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=pendiente pagado parcial vencido" example:"pagado"`
}

// EditPaymentRequestDTO only changes the fields present in the body.
type EditPaymentRequestDTO struct {
	AmountDue     *decimal.Decimal `json:"amount_due,omitempty" swaggertype:"number" example:"5000"`
	AmountPaid    *decimal.Decimal `json:"amount_paid,omitempty" swaggertype:"number" example:"2500"`
	DueDate       *string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r EditPaymentRequestDTO) Patch() (domain.PaymentPatch, error) {
	var patch domain.PaymentPatch
	if r.AmountDue != nil {
		patch.AmountDue = domain.Some(*r.AmountDue)
	}
	if r.AmountPaid != nil {
		patch.AmountPaid = domain.Some(*r.AmountPaid)
	}
	if r.PaymentMethod != nil {
		patch.PaymentMethod = domain.Some(*r.PaymentMethod)
	}
	if r.Notes != nil {
		patch.Notes = domain.Some(*r.Notes)
	}
	dueDate, err := ParseDate(r.DueDate)
	if err != nil {
		return patch, err
	}
	if dueDate != nil {
		patch.DueDate = domain.Some(*dueDate)
	}
	paymentDate, err := ParseDate(r.PaymentDate)
	if err != nil {
		return patch, err
	}
	if paymentDate != nil {
		patch.PaymentDate = domain.Some(*paymentDate)
	}
	return patch, nil
}

type PaymentResponseDTO struct {
	ID            int             `json:"id" example:"7"`
	MemberID      int             `json:"member_id" example:"12"`
	PeriodMonth   int             `json:"period_month" example:"3"`
	PeriodYear    int             `json:"period_year" example:"2024"`
	AmountDue     decimal.Decimal `json:"amount_due" swaggertype:"number" example:"5000"`
	AmountPaid    decimal.Decimal `json:"amount_paid" swaggertype:"number" example:"2500"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number" example:"2500"`
	PaymentType   string          `json:"payment_type" example:"minimo"`
	Status        string          `json:"status" example:"parcial"`
	DueDate       string          `json:"due_date" example:"2024-03-10"`
	PaymentMethod *string         `json:"payment_method,omitempty" example:"efectivo"`
	PaymentDate   *string         `json:"payment_date,omitempty" example:"2024-03-05"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     string          `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:            p.ID,
		MemberID:      p.MemberID,
		PeriodMonth:   p.PeriodMonth,
		PeriodYear:    p.PeriodYear,
		AmountDue:     p.AmountDue,
		AmountPaid:    p.AmountPaid,
		Balance:       p.Balance,
		PaymentType:   string(p.PaymentType),
		Status:        string(p.Status),
		DueDate:       p.DueDate.Format(DateLayout),
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   formatDate(p.PaymentDate),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

// AppliedPaymentResponseDTO echoes the amount taken in by one application.
type AppliedPaymentResponseDTO struct {
	PaymentResponseDTO
	AmountReceived decimal.Decimal `json:"amount_received" swaggertype:"number" example:"2500"`
}

func NewAppliedPaymentResponse(p *domain.Payment, received decimal.Decimal) AppliedPaymentResponseDTO {
	return AppliedPaymentResponseDTO{
		PaymentResponseDTO: NewPaymentResponse(p),
		AmountReceived:     received,
	}
}

type MonthlySummaryResponseDTO struct {
	Month          int             `json:"month" example:"3"`
	Year           int             `json:"year" example:"2024"`
	TotalPayments  int             `json:"total_payments" example:"42"`
	PaidCount      int             `json:"paid_count" example:"30"`
	PartialCount   int             `json:"partial_count" example:"5"`
	PendingCount   int             `json:"pending_count" example:"4"`
	OverdueCount   int             `json:"overdue_count" example:"3"`
	TotalExpected  decimal.Decimal `json:"total_expected" swaggertype:"number" example:"210000"`
	TotalCollected decimal.Decimal `json:"total_collected" swaggertype:"number" example:"170000"`
	TotalPending   decimal.Decimal `json:"total_pending" swaggertype:"number" example:"40000"`
}

func NewMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponseDTO {
	return MonthlySummaryResponseDTO{
		Month:          s.Month,
		Year:           s.Year,
		TotalPayments:  s.TotalPayments,
		PaidCount:      s.PaidCount,
		PartialCount:   s.PartialCount,
		PendingCount:   s.PendingCount,
		OverdueCount:   s.OverdueCount,
		TotalExpected:  s.TotalExpected,
		TotalCollected: s.TotalCollected,
		TotalPending:   s.TotalPending,
	}
}

type DebtorDTO struct {
	MemberID      int             `json:"member_id" example:"12"`
	FirstName     string          `json:"first_name" example:"Ana"`
	LastName      string          `json:"last_name" example:"Gómez"`
	IsMember      bool            `json:"is_member" example:"true"`
	CategoryName  string          `json:"category_name" example:"Activo"`
	PendingMonths int             `json:"pending_months" example:"3"`
	TotalDebt     decimal.Decimal `json:"total_debt" swaggertype:"number" example:"15000"`
	OldestPeriod  string          `json:"oldest_period" example:"2024-01"`
	NewestPeriod  string          `json:"newest_period" example:"2024-03"`
}

type DebtorsResponseDTO struct {
	TotalDebtors int             `json:"total_debtors" example:"1"`
	TotalDebt    decimal.Decimal `json:"total_debt" swaggertype:"number" example:"15000"`
	Debtors      []DebtorDTO     `json:"debtors"`
}

func NewDebtorsResponse(r *domain.DebtorsReport) DebtorsResponseDTO {
	resp := DebtorsResponseDTO{
		TotalDebtors: r.TotalDebtors,
		TotalDebt:    r.TotalDebt,
		Debtors:      make([]DebtorDTO, 0, len(r.Debtors)),
	}
	for _, d := range r.Debtors {
		resp.Debtors = append(resp.Debtors, DebtorDTO{
			MemberID:      d.MemberID,
			FirstName:     d.FirstName,
			LastName:      d.LastName,
			IsMember:      d.IsMember,
			CategoryName:  d.CategoryName,
			PendingMonths: d.PendingMonths,
			TotalDebt:     d.TotalDebt,
			OldestPeriod:  d.OldestPeriod,
			NewestPeriod:  d.NewestPeriod,
		})
	}
	return resp
}

type EligibilityResponseDTO struct {
	MemberID        int                  `json:"member_id" example:"12"`
	Name            string               `json:"name" example:"Ana Gómez"`
	IsMember        bool                 `json:"is_member" example:"true"`
	Status          string               `json:"status" example:"activo"`
	IsEnabled       bool                 `json:"is_enabled" example:"true"`
	Reason          string               `json:"reason" example:"debt within limit (1/2 months)"`
	MaxDebtMonths   int                  `json:"max_debt_months" example:"2"`
	PendingMonths   int                  `json:"pending_months" example:"1"`
	TotalDebt       decimal.Decimal      `json:"total_debt" swaggertype:"number" example:"5000"`
	PendingPayments []PaymentResponseDTO `json:"pending_payments"`
}

func NewEligibilityResponse(e *domain.Eligibility) EligibilityResponseDTO {
	resp := EligibilityResponseDTO{
		MemberID:        e.MemberID,
		Name:            e.Name,
		IsMember:        e.IsMember,
		Status:          string(e.Status),
		IsEnabled:       e.IsEnabled,
		Reason:          e.Reason,
		MaxDebtMonths:   e.MaxDebtMonths,
		PendingMonths:   e.PendingMonths,
		TotalDebt:       e.TotalDebt,
		PendingPayments: make([]PaymentResponseDTO, 0, len(e.PendingPayments)),
	}
	for i := range e.PendingPayments {
		resp.PendingPayments = append(resp.PendingPayments, NewPaymentResponse(&e.PendingPayments[i]))
	}
	return resp
}
