package billingservice

//go:generate mockgen -source=billingservice.go -destination=mock_billingservice.go -package=billingservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByIDForUpdate(ctx context.Context, paymentID int) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID int, status domain.PaymentStatus) (*domain.Payment, error)
	Delete(ctx context.Context, paymentID int) error
	MonthlySummary(ctx context.Context, month, year int) (*domain.MonthlySummary, error)
	Debtors(ctx context.Context, filter domain.DebtorFilter) ([]domain.Debtor, error)
}

type MemberRepo interface {
	FindActiveIDs(ctx context.Context) ([]int, error)
}

type Pricing interface {
	AmountDue(ctx context.Context, memberID int) (decimal.Decimal, error)
}

type Service struct {
	payments  PaymentRepo
	members   MemberRepo
	pricing   Pricing
	txManager pg.TXManager
	workers   int
	now       func() time.Time
}

func New(payments PaymentRepo, members MemberRepo, pricing Pricing, txManager pg.TXManager, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		payments:  payments,
		members:   members,
		pricing:   pricing,
		txManager: txManager,
		workers:   workers,
		now:       time.Now,
	}
}

type BillRequest struct {
	MemberID int
	Month    int
	Year     int
	DueDate  *time.Time
	Notes    *string
}

type BulkResult struct {
	Created int
	Skipped int
	Total   int
}

type PaymentApplication struct {
	Amount decimal.Decimal
	Method *string
	Date   *time.Time
	Notes  *string
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", domain.ErrInvalidArgument)
	}
	if year < 2000 || year > 9999 {
		return fmt.Errorf("%w: year %d is out of range", domain.ErrInvalidArgument, year)
	}
	return nil
}

// BillPeriod creates the dues record of one member for one period. The amount
// due is snapshotted from the member's category and never recomputed later.
func (s *Service) BillPeriod(ctx context.Context, operatorID int, req BillRequest) (*domain.Payment, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return nil, err
	}
	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: member_id is required", domain.ErrInvalidArgument)
	}

	amountDue, err := s.pricing.AmountDue(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	dueDate := DefaultDueDate(req.Month, req.Year)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	payment, err := s.payments.Create(ctx, &domain.Payment{
		MemberID:    req.MemberID,
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		AmountDue:   amountDue,
		AmountPaid:  decimal.Zero,
		Balance:     amountDue,
		PaymentType: domain.PaymentTypeNone,
		Status:      domain.PaymentPending,
		DueDate:     dueDate,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			zap.L().Info("period already billed", zap.Int("member_id", req.MemberID),
				zap.Int("month", req.Month), zap.Int("year", req.Year))
		}
		return nil, domain.StoreFailure(err)
	}

	zap.L().Info("period billed",
		zap.Int("operator_id", operatorID),
		zap.Int("payment_id", payment.ID),
		zap.Int("member_id", req.MemberID),
		zap.String("amount_due", amountDue.String()))
	return payment, nil
}

// BillAllActive bills the period for every active member. Members already
// billed for the period are counted as skipped; any other failure aborts the
// batch and is returned.
func (s *Service) BillAllActive(ctx context.Context, operatorID, month, year int, dueDate *time.Time) (*BulkResult, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	ids, err := s.members.FindActiveIDs(ctx)
	if err != nil {
		zap.L().Error("failed to list active members", zap.Error(err))
		return nil, domain.StoreFailure(err)
	}

	var created, skipped atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := s.BillPeriod(gctx, operatorID, BillRequest{
				MemberID: id,
				Month:    month,
				Year:     year,
				DueDate:  dueDate,
			})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrConflict):
				skipped.Add(1)
			default:
				return fmt.Errorf("bill member %d: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("bulk billing aborted", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	result := &BulkResult{
		Created: int(created.Load()),
		Skipped: int(skipped.Load()),
		Total:   len(ids),
	}
	zap.L().Info("bulk billing finished",
		zap.Int("operator_id", operatorID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// ApplyPayment adds amount to what has been paid and refreshes balance, type
// and status. The row stays locked for the whole read-compute-write cycle.
func (s *Service) ApplyPayment(ctx context.Context, operatorID, paymentID int, app PaymentApplication) (*domain.Payment, error) {
	if !app.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", domain.ErrInvalidArgument)
	}
	if !ValidAmount(app.Amount) {
		return nil, fmt.Errorf("%w: amount must have at most 2 decimals and not exceed %s", domain.ErrInvalidArgument, maxAmount)
	}

	var updated *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.payments.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: payment %d", domain.ErrNotFound, paymentID)
		}

		today := s.now()
		paid := p.AmountPaid.Add(app.Amount)
		if !ValidAmount(paid) {
			return fmt.Errorf("%w: amount_paid would exceed %s", domain.ErrInvalidArgument, maxAmount)
		}
		p.AmountPaid = paid
		recompute(p, today)
		if app.Method != nil {
			p.PaymentMethod = app.Method
		}
		if app.Date != nil {
			p.PaymentDate = app.Date
		} else {
			d := dateOf(today)
			p.PaymentDate = &d
		}
		if app.Notes != nil {
			p.Notes = app.Notes
		}

		updated, err = s.payments.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	zap.L().Info("payment applied",
		zap.Int("operator_id", operatorID),
		zap.Int("payment_id", paymentID),
		zap.String("amount", app.Amount.String()),
		zap.String("status", string(updated.Status)))
	return updated, nil
}

// SetStatus overrides the status by hand. Amounts are left untouched.
func (s *Service) SetStatus(ctx context.Context, operatorID, paymentID int, status domain.PaymentStatus) (*domain.Payment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be 'pendiente', 'pagado', 'parcial' or 'vencido'", domain.ErrInvalidArgument)
	}
	p, err := s.payments.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	zap.L().Info("payment status set", zap.Int("operator_id", operatorID),
		zap.Int("payment_id", paymentID), zap.String("status", string(status)))
	return p, nil
}

// EditPayment applies an administrative correction. Unlike ApplyPayment it may
// lower amount_paid; derived columns are recomputed from the result.
func (s *Service) EditPayment(ctx context.Context, operatorID, paymentID int, patch domain.PaymentPatch) (*domain.Payment, error) {
	if patch.AmountDue.Set && patch.AmountDue.Value.IsNegative() {
		return nil, fmt.Errorf("%w: amount_due must not be negative", domain.ErrInvalidArgument)
	}
	if patch.AmountPaid.Set && patch.AmountPaid.Value.IsNegative() {
		return nil, fmt.Errorf("%w: amount_paid must not be negative", domain.ErrInvalidArgument)
	}
	if patch.AmountDue.Set && !ValidAmount(patch.AmountDue.Value) {
		return nil, fmt.Errorf("%w: amount_due must have at most 2 decimals and not exceed %s", domain.ErrInvalidArgument, maxAmount)
	}
	if patch.AmountPaid.Set && !ValidAmount(patch.AmountPaid.Value) {
		return nil, fmt.Errorf("%w: amount_paid must have at most 2 decimals and not exceed %s", domain.ErrInvalidArgument, maxAmount)
	}

	var updated *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.payments.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: payment %d", domain.ErrNotFound, paymentID)
		}

		if patch.AmountDue.Set {
			p.AmountDue = patch.AmountDue.Value
		}
		if patch.AmountPaid.Set {
			p.AmountPaid = patch.AmountPaid.Value
		}
		if patch.DueDate.Set {
			p.DueDate = patch.DueDate.Value
		}
		if patch.PaymentMethod.Set {
			p.PaymentMethod = &patch.PaymentMethod.Value
		}
		if patch.PaymentDate.Set {
			p.PaymentDate = &patch.PaymentDate.Value
		}
		if patch.Notes.Set {
			p.Notes = &patch.Notes.Value
		}
		recompute(p, s.now())

		updated, err = s.payments.Update(ctx, p)
		return err
	})
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	zap.L().Info("payment edited", zap.Int("operator_id", operatorID), zap.Int("payment_id", paymentID))
	return updated, nil
}

func (s *Service) Remove(ctx context.Context, operatorID, paymentID int) error {
	if err := s.payments.Delete(ctx, paymentID); err != nil {
		return domain.StoreFailure(err)
	}
	zap.L().Info("payment removed", zap.Int("operator_id", operatorID), zap.Int("payment_id", paymentID))
	return nil
}

func (s *Service) MonthlySummary(ctx context.Context, month, year int) (*domain.MonthlySummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	summary, err := s.payments.MonthlySummary(ctx, month, year)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	return summary, nil
}

func (s *Service) Debtors(ctx context.Context, filter domain.DebtorFilter) (*domain.DebtorsReport, error) {
	if filter.Status != nil && !filter.Status.Unsettled() {
		return nil, fmt.Errorf("%w: status must be 'pendiente', 'parcial' or 'vencido'", domain.ErrInvalidArgument)
	}
	if filter.MinMonths != nil && *filter.MinMonths < 0 {
		return nil, fmt.Errorf("%w: min_months must not be negative", domain.ErrInvalidArgument)
	}

	debtors, err := s.payments.Debtors(ctx, filter)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	report := &domain.DebtorsReport{
		TotalDebtors: len(debtors),
		TotalDebt:    decimal.Zero,
		Debtors:      debtors,
	}
	for _, d := range debtors {
		report.TotalDebt = report.TotalDebt.Add(d.TotalDebt)
	}
	return report, nil
}
