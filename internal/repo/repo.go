package repo

import (
	"github.com/GlebRadaev/clubledger/internal/pg"
	memberrepo "github.com/GlebRadaev/clubledger/internal/repo/member-repo"
	orderrepo "github.com/GlebRadaev/clubledger/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/clubledger/internal/repo/payment-repo"
	productrepo "github.com/GlebRadaev/clubledger/internal/repo/product-repo"
	"github.com/GlebRadaev/clubledger/internal/service/billingservice"
	"github.com/GlebRadaev/clubledger/internal/service/debtservice"
	"github.com/GlebRadaev/clubledger/internal/service/orderservice"
	"github.com/GlebRadaev/clubledger/internal/service/pricingservice"
)

type MemberRepo interface {
	pricingservice.MemberRepo
	billingservice.MemberRepo
	debtservice.MemberRepo
	orderservice.MemberRepo
}

type PaymentRepo interface {
	billingservice.PaymentRepo
	debtservice.PaymentRepo
}

type Repositories struct {
	MemberRepo  MemberRepo
	PaymentRepo PaymentRepo
	ProductRepo orderservice.ProductRepo
	OrderRepo   orderservice.OrderRepo
	TXManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MemberRepo:  memberrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
		ProductRepo: productrepo.New(conn),
		OrderRepo:   orderrepo.New(conn),
		TXManager:   txManager,
	}
}
