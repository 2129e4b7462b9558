package service

import (
	"github.com/GlebRadaev/clubledger/internal/config"
	"github.com/GlebRadaev/clubledger/internal/handlers/billing"
	"github.com/GlebRadaev/clubledger/internal/handlers/orders"
	"github.com/GlebRadaev/clubledger/internal/repo"
	"github.com/GlebRadaev/clubledger/internal/service/billingservice"
	"github.com/GlebRadaev/clubledger/internal/service/debtservice"
	"github.com/GlebRadaev/clubledger/internal/service/orderservice"
	"github.com/GlebRadaev/clubledger/internal/service/pricingservice"
)

type Services struct {
	BillingService billing.Service
	DebtService    billing.DebtService
	OrderService   orders.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	pricingService := pricingservice.New(repo.MemberRepo)
	billingService := billingservice.New(repo.PaymentRepo, repo.MemberRepo, pricingService, repo.TXManager, cfg.BillingWorkers)
	debtService := debtservice.New(repo.PaymentRepo, repo.MemberRepo, cfg.MaxDebtMonths)
	orderService := orderservice.New(repo.OrderRepo, repo.ProductRepo, repo.MemberRepo, debtService, repo.TXManager, cfg.MaxDebtMonths)

	return &Services{
		BillingService: billingService,
		DebtService:    debtService,
		OrderService:   orderService,
	}
}
