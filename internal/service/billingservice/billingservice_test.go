package billingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/pg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var today = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

type mocks struct {
	payments *MockPaymentRepo
	members  *MockMemberRepo
	pricing  *MockPricing
	tx       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payments: NewMockPaymentRepo(ctrl),
		members:  NewMockMemberRepo(ctrl),
		pricing:  NewMockPricing(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.payments, m.members, m.pricing, m.tx, 4)
	service.now = func() time.Time { return today }
	return service, m
}

func (m *mocks) passthroughTx() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestBillPeriod(t *testing.T) {
	service, m := NewMock(t)
	customDue := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		req           BillRequest
		prepareMock   func()
		expectedDue   time.Time
		expectedError error
	}{
		{
			name: "Default due date is the 10th",
			req:  BillRequest{MemberID: 7, Month: 1, Year: 2024},
			prepareMock: func() {
				m.pricing.EXPECT().AmountDue(gomock.Any(), 7).Return(decimal.NewFromInt(1000), nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						assert.True(t, p.AmountDue.Equal(decimal.NewFromInt(1000)))
						assert.True(t, p.AmountPaid.IsZero())
						assert.True(t, p.Balance.Equal(p.AmountDue))
						assert.Equal(t, domain.PaymentTypeNone, p.PaymentType)
						assert.Equal(t, domain.PaymentPending, p.Status)
						p.ID = 1
						return p, nil
					})
			},
			expectedDue: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Explicit due date",
			req:  BillRequest{MemberID: 7, Month: 1, Year: 2024, DueDate: &customDue},
			prepareMock: func() {
				m.pricing.EXPECT().AmountDue(gomock.Any(), 7).Return(decimal.NewFromInt(1000), nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						return p, nil
					})
			},
			expectedDue: customDue,
		},
		{
			name:          "Month out of range",
			req:           BillRequest{MemberID: 7, Month: 13, Year: 2024},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Year out of range",
			req:           BillRequest{MemberID: 7, Month: 1, Year: 1999},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Missing member",
			req:           BillRequest{Month: 1, Year: 2024},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "Unknown member",
			req:  BillRequest{MemberID: 9, Month: 1, Year: 2024},
			prepareMock: func() {
				m.pricing.EXPECT().AmountDue(gomock.Any(), 9).Return(decimal.Zero, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Period already billed",
			req:  BillRequest{MemberID: 7, Month: 1, Year: 2024},
			prepareMock: func() {
				m.pricing.EXPECT().AmountDue(gomock.Any(), 7).Return(decimal.NewFromInt(1000), nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name: "Store failure",
			req:  BillRequest{MemberID: 7, Month: 1, Year: 2024},
			prepareMock: func() {
				m.pricing.EXPECT().AmountDue(gomock.Any(), 7).Return(decimal.NewFromInt(1000), nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			payment, err := service.BillPeriod(context.Background(), 1, tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDue, payment.DueDate)
		})
	}
}

func TestBillAllActive(t *testing.T) {
	t.Run("Counts created and skipped", func(t *testing.T) {
		service, m := NewMock(t)
		m.members.EXPECT().FindActiveIDs(gomock.Any()).Return([]int{1, 2, 3}, nil)
		m.pricing.EXPECT().AmountDue(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(500), nil).Times(3)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
				if p.MemberID == 2 {
					return nil, domain.ErrConflict
				}
				return p, nil
			}).Times(3)

		result, err := service.BillAllActive(context.Background(), 1, 2, 2024, nil)
		require.NoError(t, err)
		assert.Equal(t, &BulkResult{Created: 2, Skipped: 1, Total: 3}, result)
	})

	t.Run("No active members", func(t *testing.T) {
		service, m := NewMock(t)
		m.members.EXPECT().FindActiveIDs(gomock.Any()).Return(nil, nil)

		result, err := service.BillAllActive(context.Background(), 1, 2, 2024, nil)
		require.NoError(t, err)
		assert.Equal(t, &BulkResult{}, result)
	})

	t.Run("Other failures abort the batch", func(t *testing.T) {
		service, m := NewMock(t)
		m.members.EXPECT().FindActiveIDs(gomock.Any()).Return([]int{1}, nil)
		m.pricing.EXPECT().AmountDue(gomock.Any(), 1).Return(decimal.NewFromInt(500), nil)
		m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

		result, err := service.BillAllActive(context.Background(), 1, 2, 2024, nil)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Nil(t, result)
	})

	t.Run("Listing members fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.members.EXPECT().FindActiveIDs(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.BillAllActive(context.Background(), 1, 2, 2024, nil)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("Invalid period", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.BillAllActive(context.Background(), 1, 0, 2024, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func billed(amountDue, amountPaid int64) *domain.Payment {
	p := &domain.Payment{
		ID:          5,
		MemberID:    7,
		PeriodMonth: 1,
		PeriodYear:  2024,
		AmountDue:   decimal.NewFromInt(amountDue),
		AmountPaid:  decimal.NewFromInt(amountPaid),
		DueDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	recompute(p, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return p
}

func returnUpdated(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	return p, nil
}

func TestApplyPayment(t *testing.T) {
	method := "efectivo"

	tests := []struct {
		name          string
		app           PaymentApplication
		prepareMock   func(m *mocks)
		expectedType  domain.PaymentType
		expectedState domain.PaymentStatus
		expectedBal   decimal.Decimal
		expectedError error
	}{
		{
			name: "Half of the fee is a minimum payment",
			app:  PaymentApplication{Amount: decimal.NewFromInt(500), Method: &method},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 0), nil)
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)
			},
			expectedType:  domain.PaymentTypeMinimum,
			expectedState: domain.PaymentPartial,
			expectedBal:   decimal.NewFromInt(500),
		},
		{
			name: "Second payment completes the period",
			app:  PaymentApplication{Amount: decimal.NewFromInt(500)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 500), nil)
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)
			},
			expectedType:  domain.PaymentTypeComplete,
			expectedState: domain.PaymentPaid,
			expectedBal:   decimal.Zero,
		},
		{
			name: "Overpayment floors the balance at zero",
			app:  PaymentApplication{Amount: decimal.NewFromInt(1500)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 0), nil)
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)
			},
			expectedType:  domain.PaymentTypeComplete,
			expectedState: domain.PaymentPaid,
			expectedBal:   decimal.Zero,
		},
		{
			name: "Small amount is partial",
			app:  PaymentApplication{Amount: decimal.NewFromInt(100)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 0), nil)
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)
			},
			expectedType:  domain.PaymentTypePartial,
			expectedState: domain.PaymentPartial,
			expectedBal:   decimal.NewFromInt(900),
		},
		{
			name:          "Zero amount",
			app:           PaymentApplication{Amount: decimal.Zero},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Negative amount",
			app:           PaymentApplication{Amount: decimal.NewFromInt(-5)},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "More than two decimals",
			app:           PaymentApplication{Amount: decimal.RequireFromString("0.001")},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Amount above the column limit",
			app:           PaymentApplication{Amount: decimal.New(1, 13)},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "Accumulated amount above the column limit",
			app:  PaymentApplication{Amount: decimal.NewFromInt(1)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				p := billed(1000, 0)
				p.AmountPaid = decimal.RequireFromString("9999999999.99")
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(p, nil)
			},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name: "Payment not found",
			app:  PaymentApplication{Amount: decimal.NewFromInt(100)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Update fails",
			app:  PaymentApplication{Amount: decimal.NewFromInt(100)},
			prepareMock: func(m *mocks) {
				m.passthroughTx()
				m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 0), nil)
				m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock"))
			},
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			payment, err := service.ApplyPayment(context.Background(), 1, 5, tt.app)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, payment.PaymentType)
			assert.Equal(t, tt.expectedState, payment.Status)
			assert.True(t, tt.expectedBal.Equal(payment.Balance), "balance %s", payment.Balance)
			require.NotNil(t, payment.PaymentDate)
			assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *payment.PaymentDate)
			if tt.app.Method != nil {
				assert.Equal(t, tt.app.Method, payment.PaymentMethod)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	t.Run("Stores a valid status", func(t *testing.T) {
		service, m := NewMock(t)
		stored := billed(1000, 0)
		stored.Status = domain.PaymentPaid
		m.payments.EXPECT().UpdateStatus(gomock.Any(), 5, domain.PaymentPaid).Return(stored, nil)

		p, err := service.SetStatus(context.Background(), 1, 5, domain.PaymentPaid)
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, p.Status)
		assert.True(t, p.AmountPaid.IsZero())
	})

	t.Run("Rejects unknown status", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.SetStatus(context.Background(), 1, 5, domain.PaymentStatus("anulado"))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Missing payment", func(t *testing.T) {
		service, m := NewMock(t)
		m.payments.EXPECT().UpdateStatus(gomock.Any(), 5, domain.PaymentOverdue).Return(nil, domain.ErrNotFound)
		_, err := service.SetStatus(context.Background(), 1, 5, domain.PaymentOverdue)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEditPayment(t *testing.T) {
	t.Run("Lowering amount_paid recomputes derived columns", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 1000), nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)

		payment, err := service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{
			AmountPaid: domain.Some(decimal.Zero),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentTypeNone, payment.PaymentType)
		assert.Equal(t, domain.PaymentOverdue, payment.Status)
		assert.True(t, payment.Balance.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("Moving the due date forward clears overdue", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 0), nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)

		notes := "extended"
		payment, err := service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{
			DueDate: domain.Some(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
			Notes:   domain.Some(notes),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPending, payment.Status)
		assert.Equal(t, &notes, payment.Notes)
	})

	t.Run("Raising amount_due", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(billed(1000, 1000), nil)
		m.payments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnUpdated)

		payment, err := service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{
			AmountDue: domain.Some(decimal.NewFromInt(1500)),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentTypeMinimum, payment.PaymentType)
		assert.Equal(t, domain.PaymentPartial, payment.Status)
		assert.True(t, payment.Balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Negative amounts are rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{
			AmountPaid: domain.Some(decimal.NewFromInt(-1)),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{
			AmountDue: domain.Some(decimal.NewFromInt(-1)),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Amounts outside the money column are rejected", func(t *testing.T) {
		tests := []struct {
			name  string
			patch domain.PaymentPatch
		}{
			{name: "amount_due with three decimals", patch: domain.PaymentPatch{AmountDue: domain.Some(decimal.RequireFromString("10.001"))}},
			{name: "amount_paid with three decimals", patch: domain.PaymentPatch{AmountPaid: domain.Some(decimal.RequireFromString("0.001"))}},
			{name: "amount_due too large", patch: domain.PaymentPatch{AmountDue: domain.Some(decimal.New(1, 13))}},
			{name: "amount_paid too large", patch: domain.PaymentPatch{AmountPaid: domain.Some(decimal.New(1, 13))}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, _ := NewMock(t)
				payment, err := service.EditPayment(context.Background(), 1, 5, tt.patch)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.Nil(t, payment)
			})
		}
	})

	t.Run("Payment not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx()
		m.payments.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(nil, nil)

		_, err := service.EditPayment(context.Background(), 1, 5, domain.PaymentPatch{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRemove(t *testing.T) {
	service, m := NewMock(t)

	m.payments.EXPECT().Delete(gomock.Any(), 5).Return(nil)
	assert.NoError(t, service.Remove(context.Background(), 1, 5))

	m.payments.EXPECT().Delete(gomock.Any(), 6).Return(domain.ErrNotFound)
	assert.ErrorIs(t, service.Remove(context.Background(), 1, 6), domain.ErrNotFound)

	m.payments.EXPECT().Delete(gomock.Any(), 7).Return(errors.New("broken pipe"))
	assert.ErrorIs(t, service.Remove(context.Background(), 1, 7), domain.ErrStoreUnavailable)
}

func TestMonthlySummary(t *testing.T) {
	service, m := NewMock(t)

	summary := &domain.MonthlySummary{Month: 1, Year: 2024, TotalPayments: 3}
	m.payments.EXPECT().MonthlySummary(gomock.Any(), 1, 2024).Return(summary, nil)
	got, err := service.MonthlySummary(context.Background(), 1, 2024)
	require.NoError(t, err)
	assert.Equal(t, summary, got)

	_, err = service.MonthlySummary(context.Background(), 0, 2024)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	m.payments.EXPECT().MonthlySummary(gomock.Any(), 2, 2024).Return(nil, errors.New("timeout"))
	_, err = service.MonthlySummary(context.Background(), 2, 2024)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestDebtors(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Totals the debt", func(t *testing.T) {
		m.payments.EXPECT().Debtors(gomock.Any(), domain.DebtorFilter{}).Return([]domain.Debtor{
			{MemberID: 1, PendingMonths: 2, TotalDebt: decimal.NewFromInt(1500)},
			{MemberID: 2, PendingMonths: 1, TotalDebt: decimal.RequireFromString("250.50")},
		}, nil)

		report, err := service.Debtors(context.Background(), domain.DebtorFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, report.TotalDebtors)
		assert.True(t, report.TotalDebt.Equal(decimal.RequireFromString("1750.50")))
	})

	t.Run("Empty report", func(t *testing.T) {
		m.payments.EXPECT().Debtors(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := service.Debtors(context.Background(), domain.DebtorFilter{})
		require.NoError(t, err)
		assert.Zero(t, report.TotalDebtors)
		assert.True(t, report.TotalDebt.IsZero())
	})

	t.Run("Settled status is not a debtor filter", func(t *testing.T) {
		paid := domain.PaymentPaid
		_, err := service.Debtors(context.Background(), domain.DebtorFilter{Status: &paid})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Negative min months", func(t *testing.T) {
		n := -1
		_, err := service.Debtors(context.Background(), domain.DebtorFilter{MinMonths: &n})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
