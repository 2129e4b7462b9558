package debtservice

//go:generate mockgen -source=debtservice.go -destination=mock_debtservice.go -package=debtservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentRepo interface {
	CountUnsettled(ctx context.Context, memberID int) (int, error)
	FindUnsettled(ctx context.Context, memberID int) ([]domain.Payment, error)
}

type MemberRepo interface {
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
}

type Service struct {
	payments      PaymentRepo
	members       MemberRepo
	maxDebtMonths int
}

func New(payments PaymentRepo, members MemberRepo, maxDebtMonths int) *Service {
	return &Service{
		payments:      payments,
		members:       members,
		maxDebtMonths: maxDebtMonths,
	}
}

func (s *Service) limit(maxDebtMonths int) int {
	if maxDebtMonths <= 0 {
		return s.maxDebtMonths
	}
	return maxDebtMonths
}

// IsEnabled reports whether the member may buy: the number of unsettled
// periods must not exceed maxDebtMonths. Only the count matters, not the amount.
func (s *Service) IsEnabled(ctx context.Context, memberID, maxDebtMonths int) (bool, error) {
	n, err := s.payments.CountUnsettled(ctx, memberID)
	if err != nil {
		return false, domain.StoreFailure(err)
	}
	return n <= s.limit(maxDebtMonths), nil
}

func (s *Service) Eligibility(ctx context.Context, memberID, maxDebtMonths int) (*domain.Eligibility, error) {
	limit := s.limit(maxDebtMonths)

	member, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	if member == nil {
		return nil, fmt.Errorf("%w: member %d", domain.ErrNotFound, memberID)
	}

	e := &domain.Eligibility{
		MemberID:      member.ID,
		Name:          member.FirstName + " " + member.LastName,
		IsMember:      member.IsMember,
		Status:        member.Status,
		MaxDebtMonths: limit,
		TotalDebt:     decimal.Zero,
	}
	if !member.Active() {
		e.Reason = "member is inactive"
		return e, nil
	}

	pending, err := s.payments.FindUnsettled(ctx, memberID)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	e.PendingPayments = pending
	e.PendingMonths = len(pending)
	for _, p := range pending {
		e.TotalDebt = e.TotalDebt.Add(p.Balance)
	}
	e.IsEnabled = e.PendingMonths <= limit

	switch {
	case e.PendingMonths == 0:
		e.Reason = "no debt"
	case e.IsEnabled:
		e.Reason = fmt.Sprintf("debt within limit (%d/%d months)", e.PendingMonths, limit)
	default:
		e.Reason = fmt.Sprintf("debt exceeds limit (%d months, max %d)", e.PendingMonths, limit)
		zap.L().Info("member not enabled", zap.Int("member_id", memberID), zap.Int("pending_months", e.PendingMonths))
	}
	return e, nil
}
