package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/clubledger/docs"
	billinghandlers "github.com/GlebRadaev/clubledger/internal/handlers/billing"
	ordershandlers "github.com/GlebRadaev/clubledger/internal/handlers/orders"
	"github.com/GlebRadaev/clubledger/internal/service"
	"github.com/GlebRadaev/clubledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type BillingHandler interface {
	BillPeriod(w http.ResponseWriter, r *http.Request)
	BillAllActive(w http.ResponseWriter, r *http.Request)
	ApplyPayment(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	EditPayment(w http.ResponseWriter, r *http.Request)
	RemovePayment(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Debtors(w http.ResponseWriter, r *http.Request)
	Eligibility(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	DeleteOrder(w http.ResponseWriter, r *http.Request)
	SalesSummary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	BillingHandler BillingHandler
	OrderHandler   OrderHandler
	tokens         auth.TokenValidator
}

func New(s *service.Services, tokens auth.TokenValidator) *Handlers {
	return &Handlers{
		BillingHandler: billinghandlers.New(s.BillingService, s.DebtService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		tokens:         tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Route("/billing", func(r chi.Router) {
			r.Post("/periods", h.BillingHandler.BillPeriod)
			r.Post("/periods/bulk", h.BillingHandler.BillAllActive)
			r.Route("/payments/{id}", func(r chi.Router) {
				r.Patch("/", h.BillingHandler.EditPayment)
				r.Delete("/", h.BillingHandler.RemovePayment)
				r.Patch("/apply", h.BillingHandler.ApplyPayment)
				r.Patch("/status", h.BillingHandler.SetStatus)
			})
			r.Get("/summary", h.BillingHandler.MonthlySummary)
			r.Get("/debtors", h.BillingHandler.Debtors)
			r.Get("/members/{id}/eligibility", h.BillingHandler.Eligibility)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.PlaceOrder)
			r.Get("/summary", h.OrderHandler.SalesSummary)
			r.Patch("/{id}/status", h.OrderHandler.ChangeStatus)
			r.Delete("/{id}", h.OrderHandler.DeleteOrder)
		})
	})

	return r
}
