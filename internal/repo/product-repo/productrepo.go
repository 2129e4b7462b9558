package productrepo

import (
	"context"
	"errors"
	"fmt"

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

// FindByIDForUpdate locks the product row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, productID int) (*domain.Product, error) {
	query := `
        SELECT id, name, price, stock, members_only, status
        FROM products
        WHERE id = $1
        FOR UPDATE
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, productID).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.MembersOnly, &p.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Int("product_id", productID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// DebitStock decrements stock in place. The row is only touched while enough
// stock is left, so stock never goes negative under concurrent orders.
func (r *Repository) DebitStock(ctx context.Context, productID, quantity int) error {
	query := `
        UPDATE products
        SET stock = stock - $1
        WHERE id = $2 AND stock >= $1
    `
	tag, err := r.db.Exec(ctx, query, quantity, productID)
	if err != nil {
		zap.L().Error("failed to debit stock", zap.Int("product_id", productID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return &domain.StockError{ProductID: productID, Requested: quantity}
	}
	return nil
}

func (r *Repository) RestoreStock(ctx context.Context, productID, quantity int) error {
	query := `
        UPDATE products
        SET stock = stock + $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, quantity, productID)
	if err != nil {
		zap.L().Error("failed to restore stock", zap.Int("product_id", productID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}
	return nil
}
