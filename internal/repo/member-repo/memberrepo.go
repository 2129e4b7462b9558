package memberrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByID(ctx context.Context, memberID int) (*domain.Member, error) {
	query := `
        SELECT id, first_name, last_name, category_id, is_member, status
        FROM members
        WHERE id = $1
    `
	var m domain.Member
	err := r.db.QueryRow(ctx, query, memberID).
		Scan(&m.ID, &m.FirstName, &m.LastName, &m.CategoryID, &m.IsMember, &m.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// FindFee returns the member joined with the fee amounts of its category.
func (r *Repository) FindFee(ctx context.Context, memberID int) (*domain.MemberFee, error) {
	query := `
        SELECT m.id, m.is_member, m.status, c.amount_member, c.amount_non_member
        FROM members m
        JOIN categories c ON m.category_id = c.id
        WHERE m.id = $1
    `
	var fee domain.MemberFee
	err := r.db.QueryRow(ctx, query, memberID).
		Scan(&fee.MemberID, &fee.IsMember, &fee.Status, &fee.AmountMember, &fee.AmountNonMember)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member fee", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	return &fee, nil
}

func (r *Repository) FindActiveIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM members
        WHERE status = 'activo'
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan member id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate active members", zap.Error(err))
		return nil, err
	}
	return ids, nil
}
