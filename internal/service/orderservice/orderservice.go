package orderservice

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByIDForUpdate(ctx context.Context, orderID int) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (time.Time, error)
	Delete(ctx context.Context, orderID int) error
	SalesSummary(ctx context.Context, from *time.Time, to *time.Time) (*domain.SalesSummary, error)
}

type ProductRepo interface {
	FindByIDForUpdate(ctx context.Context, productID int) (*domain.Product, error)
	DebitStock(ctx context.Context, productID int, quantity int) error
	RestoreStock(ctx context.Context, productID int, quantity int) error
}

type MemberRepo interface {
	FindByID(ctx context.Context, memberID int) (*domain.Member, error)
}

type DebtGate interface {
	IsEnabled(ctx context.Context, memberID int, maxDebtMonths int) (bool, error)
}

type Service struct {
	orders        OrderRepo
	products      ProductRepo
	members       MemberRepo
	debt          DebtGate
	txManager     pg.TXManager
	maxDebtMonths int
}

func New(orders OrderRepo, products ProductRepo, members MemberRepo, debt DebtGate, txManager pg.TXManager, maxDebtMonths int) *Service {
	return &Service{
		orders:        orders,
		products:      products,
		members:       members,
		debt:          debt,
		txManager:     txManager,
		maxDebtMonths: maxDebtMonths,
	}
}

type ItemRequest struct {
	ProductID int
	Quantity  int
}

type PlaceOrderRequest struct {
	MemberID      int
	Items         []ItemRequest
	PaymentMethod *string
	Notes         *string
	// CheckDebt defaults to true when nil.
	CheckDebt *bool
}

// stockLedger keeps the products read during validation and the quantity
// requested from each, so repeated lines of one product are checked together.
type stockLedger struct {
	products  map[int]*domain.Product
	requested map[int]int
}

func newStockLedger() *stockLedger {
	return &stockLedger{
		products:  make(map[int]*domain.Product),
		requested: make(map[int]int),
	}
}

// lock reads every distinct product FOR UPDATE in ascending id order, so two
// orders over the same products always take their row locks in the same order.
func (s *Service) lock(ctx context.Context, l *stockLedger, productIDs []int) error {
	ids := slices.Clone(productIDs)
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		product, err := s.products.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
		}
		l.products[id] = product
	}
	return nil
}

func (s *Service) reserve(l *stockLedger, productID, quantity int) (*domain.Product, error) {
	product, ok := l.products[productID]
	if !ok {
		return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	if !product.Status.Sellable() {
		return nil, fmt.Errorf("%w: product %s is not available", domain.ErrInvalidArgument, product.Name)
	}
	if product.Stock < l.requested[productID]+quantity {
		return nil, &domain.StockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: l.requested[productID] + quantity,
			Available: product.Stock,
		}
	}
	l.requested[productID] += quantity
	return product, nil
}

// PlaceOrder validates the whole order before touching stock, then stores the
// order, its items and the stock debits in one transaction.
func (s *Service) PlaceOrder(ctx context.Context, operatorID int, req PlaceOrderRequest) (*domain.Order, error) {
	if req.MemberID <= 0 || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: member_id and items are required", domain.ErrInvalidArgument)
	}
	checkDebt := req.CheckDebt == nil || *req.CheckDebt

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		member, err := s.members.FindByID(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if member == nil {
			return fmt.Errorf("%w: member %d", domain.ErrNotFound, req.MemberID)
		}
		if !member.Active() {
			return fmt.Errorf("%w: member %d is not active", domain.ErrInvalidArgument, req.MemberID)
		}

		if checkDebt {
			enabled, err := s.debt.IsEnabled(ctx, member.ID, s.maxDebtMonths)
			if err != nil {
				return err
			}
			if !enabled {
				return fmt.Errorf("%w: member has too many unpaid periods to buy", domain.ErrDebtExceeded)
			}
		}

		productIDs := make([]int, 0, len(req.Items))
		for _, it := range req.Items {
			if it.ProductID <= 0 || it.Quantity <= 0 {
				return fmt.Errorf("%w: each item needs product_id and quantity > 0", domain.ErrInvalidArgument)
			}
			productIDs = append(productIDs, it.ProductID)
		}
		ledger := newStockLedger()
		if err := s.lock(ctx, ledger, productIDs); err != nil {
			return err
		}

		total := decimal.Zero
		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			product, err := s.reserve(ledger, it.ProductID, it.Quantity)
			if err != nil {
				return err
			}
			if product.MembersOnly && !member.IsMember {
				return fmt.Errorf("%w: product %q is for members only", domain.ErrMembersOnly, product.Name)
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			total = total.Add(subtotal)
			items = append(items, domain.OrderItem{
				ProductID: product.ID,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		order = &domain.Order{
			MemberID:      member.ID,
			Total:         total,
			Status:        domain.OrderPending,
			PaymentMethod: req.PaymentMethod,
			Notes:         req.Notes,
			Items:         items,
		}
		if err := s.orders.Save(ctx, order); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := s.products.DebitStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Info("order rejected", zap.Int("member_id", req.MemberID), zap.Error(err))
		return nil, domain.StoreFailure(err)
	}

	zap.L().Info("order placed",
		zap.Int("operator_id", operatorID),
		zap.Int("order_id", order.ID),
		zap.Int("member_id", order.MemberID),
		zap.String("total", order.Total.String()))
	return order, nil
}

// ChangeStatus moves the order to status. Entering cancelado gives the stock
// back; leaving it takes the stock again, all or nothing.
func (s *Service) ChangeStatus(ctx context.Context, operatorID, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be 'pendiente', 'pagado', 'entregado' or 'cancelado'", domain.ErrInvalidArgument)
	}

	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orders.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
		}

		switch {
		case status == domain.OrderCancelled && order.Status != domain.OrderCancelled:
			if err := s.restoreStock(ctx, order); err != nil {
				return err
			}
		case order.Status == domain.OrderCancelled && status != domain.OrderCancelled:
			if err := s.retakeStock(ctx, order); err != nil {
				return err
			}
		}

		updatedAt, err := s.orders.UpdateStatus(ctx, orderID, status)
		if err != nil {
			return err
		}
		order.Status = status
		order.UpdatedAt = updatedAt
		return nil
	})
	if err != nil {
		return nil, domain.StoreFailure(err)
	}

	zap.L().Info("order status changed",
		zap.Int("operator_id", operatorID),
		zap.Int("order_id", orderID),
		zap.String("status", string(status)))
	return order, nil
}

// DeleteOrder removes the order, giving its stock back unless it was cancelled.
func (s *Service) DeleteOrder(ctx context.Context, operatorID, orderID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
		}
		if order.Status != domain.OrderCancelled {
			if err := s.restoreStock(ctx, order); err != nil {
				return err
			}
		}
		return s.orders.Delete(ctx, orderID)
	})
	if err != nil {
		return domain.StoreFailure(err)
	}

	zap.L().Info("order deleted", zap.Int("operator_id", operatorID), zap.Int("order_id", orderID))
	return nil
}

func productIDs(items []domain.OrderItem) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// restoreStock updates products in ascending id order, matching lock.
func (s *Service) restoreStock(ctx context.Context, order *domain.Order) error {
	items := slices.Clone(order.Items)
	slices.SortStableFunc(items, func(a, b domain.OrderItem) int { return a.ProductID - b.ProductID })
	for _, item := range items {
		if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// retakeStock re-validates every item before debiting any of them.
func (s *Service) retakeStock(ctx context.Context, order *domain.Order) error {
	ledger := newStockLedger()
	if err := s.lock(ctx, ledger, productIDs(order.Items)); err != nil {
		return fmt.Errorf("can't reactivate order %d: %w", order.ID, err)
	}
	for _, item := range order.Items {
		if _, err := s.reserve(ledger, item.ProductID, item.Quantity); err != nil {
			return fmt.Errorf("can't reactivate order %d: %w", order.ID, err)
		}
	}
	for _, item := range order.Items {
		if err := s.products.DebitStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) SalesSummary(ctx context.Context, from, to *time.Time) (*domain.SalesSummary, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from must not be after to", domain.ErrInvalidArgument)
	}
	summary, err := s.orders.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, domain.StoreFailure(err)
	}
	return summary, nil
}
