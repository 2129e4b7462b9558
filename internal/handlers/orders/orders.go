package orders

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/dto"
	"github.com/GlebRadaev/clubledger/internal/handlers/respond"
	"github.com/GlebRadaev/clubledger/internal/service/orderservice"
	"github.com/GlebRadaev/clubledger/pkg/utils"
	"github.com/GlebRadaev/clubledger/pkg/validate"
)

type Service interface {
	PlaceOrder(ctx context.Context, operatorID int, req orderservice.PlaceOrderRequest) (*domain.Order, error)
	ChangeStatus(ctx context.Context, operatorID, orderID int, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, operatorID, orderID int) error
	SalesSummary(ctx context.Context, from, to *time.Time) (*domain.SalesSummary, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// PlaceOrder godoc
//
//	@Summary		Place an order
//	@Description	Validate the member, their debt and stock, then store the order and take the stock
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PlaceOrderRequestDTO	true	"Member and items"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid order, debt exceeded, out of stock or members only"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Member or product not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	var req dto.PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]orderservice.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderservice.ItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	order, err := h.orderService.PlaceOrder(r.Context(), operatorID, orderservice.PlaceOrderRequest{
		MemberID:      req.MemberID,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		CheckDebt:     req.CheckDebt,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewOrderResponse(order))
}

// ChangeStatus godoc
//
//	@Summary		Change order status
//	@Description	Cancelling gives the stock back; reactivating a cancelled order takes it again
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int								true	"Order id"
//	@Param			request	body	dto.SetOrderStatusRequestDTO	true	"New status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid status or not enough stock to reactivate"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	orderID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.SetOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.ChangeStatus(r.Context(), operatorID, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewOrderResponse(order))
}

// DeleteOrder godoc
//
//	@Summary		Delete an order
//	@Description	Stock is given back unless the order was already cancelled
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order id"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Order deleted"
//	@Failure		400	{object}	utils.Response	"Invalid order id"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := respond.Operator(w, r)
	if !ok {
		return
	}

	orderID, ok := respond.IDParam(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	if err := h.orderService.DeleteOrder(r.Context(), operatorID, orderID); err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order deleted"})
}

// SalesSummary godoc
//
//	@Summary		Sales summary
//	@Tags			Orders
//	@Produce		json
//	@Param			from	query	string	false	"From date, YYYY-MM-DD"
//	@Param			to		query	string	false	"To date, YYYY-MM-DD"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SalesSummaryResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid date range"
//	@Failure		401	{object}	utils.Response	"Operator not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/summary [get]
func (h *OrderHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	from, errFrom := dto.ParseDate(&fromParam)
	to, errTo := dto.ParseDate(&toParam)
	if errFrom != nil || errTo != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
		return
	}

	summary, err := h.orderService.SalesSummary(r.Context(), from, to)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSalesSummaryResponse(summary))
}
