package dto

import (
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderItemRequestDTO struct {
	ProductID int `json:"product_id" validate:"required,gt=0" example:"3"`
	Quantity  int `json:"quantity" validate:"required,gt=0" example:"2"`
}

type PlaceOrderRequestDTO struct {
	MemberID      int                   `json:"member_id" validate:"required,gt=0" example:"12"`
	Items         []OrderItemRequestDTO `json:"items" validate:"required,min=1,dive"`
	PaymentMethod *string               `json:"payment_method,omitempty" example:"efectivo"`
	Notes         *string               `json:"notes,omitempty"`
	CheckDebt     *bool                 `json:"check_debt,omitempty" example:"true"`
}

type SetOrderStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=pendiente pagado entregado cancelado" example:"entregado"`
}

type OrderItemResponseDTO struct {
	ID        int             `json:"id" example:"1"`
	ProductID int             `json:"product_id" example:"3"`
	Quantity  int             `json:"quantity" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"number" example:"1200"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"number" example:"2400"`
}

type OrderResponseDTO struct {
	ID            int                    `json:"id" example:"5"`
	MemberID      int                    `json:"member_id" example:"12"`
	Total         decimal.Decimal        `json:"total" swaggertype:"number" example:"2400"`
	Status        string                 `json:"status" example:"pendiente"`
	PaymentMethod *string                `json:"payment_method,omitempty" example:"efectivo"`
	Notes         *string                `json:"notes,omitempty"`
	CreatedAt     string                 `json:"created_at" example:"2024-03-01T10:00:00Z"`
	UpdatedAt     string                 `json:"updated_at" example:"2024-03-01T10:00:00Z"`
	Items         []OrderItemResponseDTO `json:"items"`
}

func NewOrderResponse(o *domain.Order) OrderResponseDTO {
	resp := OrderResponseDTO{
		ID:            o.ID,
		MemberID:      o.MemberID,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
		Items:         make([]OrderItemResponseDTO, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponseDTO{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}

type SalesSummaryResponseDTO struct {
	TotalOrders     int             `json:"total_orders" example:"20"`
	PendingOrders   int             `json:"pending_orders" example:"3"`
	PaidOrders      int             `json:"paid_orders" example:"10"`
	DeliveredOrders int             `json:"delivered_orders" example:"5"`
	CancelledOrders int             `json:"cancelled_orders" example:"2"`
	TotalSales      decimal.Decimal `json:"total_sales" swaggertype:"number" example:"48000"`
	ConfirmedSales  decimal.Decimal `json:"confirmed_sales" swaggertype:"number" example:"36000"`
}

func NewSalesSummaryResponse(s *domain.SalesSummary) SalesSummaryResponseDTO {
	return SalesSummaryResponseDTO{
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		PaidOrders:      s.PaidOrders,
		DeliveredOrders: s.DeliveredOrders,
		CancelledOrders: s.CancelledOrders,
		TotalSales:      s.TotalSales,
		ConfirmedSales:  s.ConfirmedSales,
	}
}
