package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/GlebRadaev/clubledger/docs"
	"github.com/GlebRadaev/clubledger/internal/handlers/billing"
	"github.com/GlebRadaev/clubledger/internal/handlers/orders"
	"github.com/GlebRadaev/clubledger/internal/service"
	"github.com/GlebRadaev/clubledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		BillingService: billing.NewMockService(ctrl),
		DebtService:    billing.NewMockDebtService(ctrl),
		OrderService:   orders.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.BillingHandler)
	assert.NotNil(t, h.OrderHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBillingHandler := NewMockBillingHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)

	mockBillingHandler.EXPECT().BillPeriod(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().BillAllActive(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().ApplyPayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().SetStatus(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().EditPayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().RemovePayment(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().MonthlySummary(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().Debtors(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBillingHandler.EXPECT().Eligibility(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().DeleteOrder(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockOrderHandler.EXPECT().SalesSummary(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	token, err := jwtService.GenerateJWT(1, "admin", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	h := &Handlers{
		BillingHandler: mockBillingHandler,
		OrderHandler:   mockOrderHandler,
		tokens:         jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/billing/periods"},
		{"POST", "/api/billing/periods/bulk"},
		{"PATCH", "/api/billing/payments/7/apply"},
		{"PATCH", "/api/billing/payments/7/status"},
		{"PATCH", "/api/billing/payments/7"},
		{"DELETE", "/api/billing/payments/7"},
		{"GET", "/api/billing/summary"},
		{"GET", "/api/billing/debtors"},
		{"GET", "/api/billing/members/12/eligibility"},
		{"POST", "/api/orders"},
		{"GET", "/api/orders/summary"},
		{"PATCH", "/api/orders/5/status"},
		{"DELETE", "/api/orders/5"},
	}

	for _, tt := range routes {
		t.Run("anonymous "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
		t.Run("operator "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
