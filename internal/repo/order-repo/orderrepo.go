package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save inserts the order and its items. Callers run it inside a transaction
// together with the stock debits.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	orderQuery := `
        INSERT INTO orders (member_id, total, status, payment_method, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, orderQuery, order.MemberID, order.Total, order.Status, order.PaymentMethod, order.Notes).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Int("member_id", order.MemberID), zap.Error(err))
		return err
	}

	itemQuery := `
        INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.db.QueryRow(ctx, itemQuery, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal).
			Scan(&item.ID)
		if err != nil {
			zap.L().Error("can't save order item", zap.Int("order_id", order.ID), zap.Int("product_id", item.ProductID), zap.Error(err))
			return err
		}
	}
	return nil
}

// FindByIDForUpdate loads the order with its items and locks the order row.
func (r *Repository) FindByIDForUpdate(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT id, member_id, total, status, payment_method, notes, created_at, updated_at
        FROM orders
        WHERE id = $1
        FOR UPDATE
    `
	var o domain.Order
	err := r.db.QueryRow(ctx, query, orderID).
		Scan(&o.ID, &o.MemberID, &o.Total, &o.Status, &o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}

	items, err := r.findItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *Repository) findItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_id, quantity, unit_price, subtotal
        FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (time.Time, error) {
	query := `
        UPDATE orders
        SET status = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING updated_at
    `
	var updatedAt time.Time
	err := r.db.QueryRow(ctx, query, status, orderID).Scan(&updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	if err != nil {
		zap.L().Error("failed to update order status", zap.Int("order_id", orderID), zap.Error(err))
		return time.Time{}, err
	}
	return updatedAt, nil
}

// Delete removes the order. Items go with it through ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, orderID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		zap.L().Error("failed to delete order", zap.Int("order_id", orderID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	return nil
}

// SalesSummary aggregates orders created within [from, to]. Nil bounds are open.
func (r *Repository) SalesSummary(ctx context.Context, from, to *time.Time) (*domain.SalesSummary, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'pendiente'),
            COUNT(*) FILTER (WHERE status = 'pagado'),
            COUNT(*) FILTER (WHERE status = 'entregado'),
            COUNT(*) FILTER (WHERE status = 'cancelado'),
            COALESCE(SUM(total) FILTER (WHERE status <> 'cancelado'), 0),
            COALESCE(SUM(total) FILTER (WHERE status IN ('pagado', 'entregado')), 0)
        FROM orders
        WHERE ($1::date IS NULL OR created_at::date >= $1)
            AND ($2::date IS NULL OR created_at::date <= $2)
    `
	var s domain.SalesSummary
	err := r.db.QueryRow(ctx, query, from, to).Scan(
		&s.TotalOrders, &s.PendingOrders, &s.PaidOrders, &s.DeliveredOrders, &s.CancelledOrders,
		&s.TotalSales, &s.ConfirmedSales,
	)
	if err != nil {
		zap.L().Error("can't build sales summary", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
