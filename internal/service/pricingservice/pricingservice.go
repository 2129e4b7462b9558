package pricingservice

//go:generate mockgen -source=pricingservice.go -destination=mock_pricingservice.go -package=pricingservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type MemberRepo interface {
	FindFee(ctx context.Context, memberID int) (*domain.MemberFee, error)
}

type Service struct {
	repo MemberRepo
}

func New(repo MemberRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// AmountDue returns the monthly fee of the member: the member rate of its
// category when the membership flag is set, the non-member rate otherwise.
func (s *Service) AmountDue(ctx context.Context, memberID int) (decimal.Decimal, error) {
	fee, err := s.repo.FindFee(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to resolve member fee", zap.Int("member_id", memberID), zap.Error(err))
		return decimal.Zero, domain.StoreFailure(err)
	}
	if fee == nil {
		return decimal.Zero, fmt.Errorf("%w: member %d", domain.ErrNotFound, memberID)
	}
	return Resolve(fee), nil
}

func Resolve(fee *domain.MemberFee) decimal.Decimal {
	if fee.IsMember {
		return fee.AmountMember
	}
	return fee.AmountNonMember
}
