package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const paymentColumns = `id, member_id, period_month, period_year, amount_due, amount_paid, balance,
        payment_type, status, due_date, payment_method, payment_date, notes, created_at`

// reportedStatus reads an unpaid pendiente period past its due date as vencido.
// The stored status only changes through payment application or a manual override.
const reportedStatus = `CASE WHEN status = 'pendiente' AND amount_paid = 0 AND due_date < CURRENT_DATE
            THEN 'vencido' ELSE status END`

const reportedColumns = `id, member_id, period_month, period_year, amount_due, amount_paid, balance,
        payment_type, ` + reportedStatus + ` AS status, due_date, payment_method, payment_date, notes, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.MemberID, &p.PeriodMonth, &p.PeriodYear, &p.AmountDue, &p.AmountPaid, &p.Balance,
		&p.PaymentType, &p.Status, &p.DueDate, &p.PaymentMethod, &p.PaymentDate, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new period payment. A second payment for the same member and
// period is rejected by the store with ErrConflict.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (member_id, period_month, period_year, amount_due, amount_paid, balance,
            payment_type, status, due_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		p.MemberID, p.PeriodMonth, p.PeriodYear, p.AmountDue, p.AmountPaid, p.Balance,
		p.PaymentType, p.Status, p.DueDate, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	switch {
	case err == nil:
		return p, nil
	case pg.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: payment for member %d period %02d/%d already exists",
			domain.ErrConflict, p.MemberID, p.PeriodMonth, p.PeriodYear)
	case pg.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("%w: member %d", domain.ErrNotFound, p.MemberID)
	default:
		zap.L().Error("can't save payment", zap.Int("member_id", p.MemberID), zap.Error(err))
		return nil, err
	}
}

// FindByIDForUpdate locks the payment row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, paymentID int) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
        FOR UPDATE
    `
	p, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Int("payment_id", paymentID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Update writes every mutable column of p.
func (r *Repository) Update(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
        UPDATE payments
        SET amount_due = $1, amount_paid = $2, balance = $3, payment_type = $4, status = $5,
            due_date = $6, payment_method = $7, payment_date = $8, notes = $9
        WHERE id = $10
        RETURNING ` + paymentColumns
	updated, err := scanPayment(r.db.QueryRow(ctx, query,
		p.AmountDue, p.AmountPaid, p.Balance, p.PaymentType, p.Status,
		p.DueDate, p.PaymentMethod, p.PaymentDate, p.Notes, p.ID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", domain.ErrNotFound, p.ID)
	}
	if err != nil {
		zap.L().Error("failed to update payment", zap.Int("payment_id", p.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// UpdateStatus overwrites the status only; amounts and derived columns stay as stored.
func (r *Repository) UpdateStatus(ctx context.Context, paymentID int, status domain.PaymentStatus) (*domain.Payment, error) {
	query := `
        UPDATE payments
        SET status = $1
        WHERE id = $2
        RETURNING ` + paymentColumns
	p, err := scanPayment(r.db.QueryRow(ctx, query, status, paymentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: payment %d", domain.ErrNotFound, paymentID)
	}
	if err != nil {
		zap.L().Error("failed to update payment status", zap.Int("payment_id", paymentID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Delete(ctx context.Context, paymentID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, paymentID)
	if err != nil {
		zap.L().Error("failed to delete payment", zap.Int("payment_id", paymentID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %d", domain.ErrNotFound, paymentID)
	}
	return nil
}

// CountUnsettled counts the member's periods in pendiente, parcial or vencido.
func (r *Repository) CountUnsettled(ctx context.Context, memberID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM payments
        WHERE member_id = $1 AND status IN ('pendiente', 'parcial', 'vencido')
    `
	var n int
	if err := r.db.QueryRow(ctx, query, memberID).Scan(&n); err != nil {
		zap.L().Error("can't count unsettled payments", zap.Int("member_id", memberID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) FindUnsettled(ctx context.Context, memberID int) ([]domain.Payment, error) {
	query := `SELECT ` + reportedColumns + `
        FROM payments
        WHERE member_id = $1 AND status IN ('pendiente', 'parcial', 'vencido')
        ORDER BY period_year ASC, period_month ASC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get unsettled payments", zap.Int("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *Repository) MonthlySummary(ctx context.Context, month, year int) (*domain.MonthlySummary, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'pagado'),
            COUNT(*) FILTER (WHERE status = 'parcial'),
            COUNT(*) FILTER (WHERE status = 'pendiente'),
            COUNT(*) FILTER (WHERE status = 'vencido'),
            COALESCE(SUM(amount_due), 0),
            COALESCE(SUM(amount_paid), 0),
            COALESCE(SUM(balance), 0)
        FROM (
            SELECT amount_due, amount_paid, balance, ` + reportedStatus + ` AS status
            FROM payments
            WHERE period_month = $1 AND period_year = $2
        ) p
    `
	s := domain.MonthlySummary{Month: month, Year: year}
	err := r.db.QueryRow(ctx, query, month, year).Scan(
		&s.TotalPayments, &s.PaidCount, &s.PartialCount, &s.PendingCount, &s.OverdueCount,
		&s.TotalExpected, &s.TotalCollected, &s.TotalPending,
	)
	if err != nil {
		zap.L().Error("can't build monthly summary", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// Debtors aggregates unsettled periods of active members. Nil filter fields are ignored.
func (r *Repository) Debtors(ctx context.Context, filter domain.DebtorFilter) ([]domain.Debtor, error) {
	query := `
        SELECT
            m.id, m.first_name, m.last_name, m.is_member, c.name,
            COUNT(p.id) AS pending_months,
            COALESCE(SUM(p.balance), 0) AS total_debt,
            MIN(TO_CHAR(p.period_year, 'FM0000') || '-' || TO_CHAR(p.period_month, 'FM00')),
            MAX(TO_CHAR(p.period_year, 'FM0000') || '-' || TO_CHAR(p.period_month, 'FM00'))
        FROM members m
        JOIN categories c ON m.category_id = c.id
        JOIN (
            SELECT id, member_id, period_month, period_year, balance, ` + reportedStatus + ` AS status
            FROM payments
        ) p ON m.id = p.member_id
        WHERE m.status = 'activo'
            AND p.status IN ('pendiente', 'parcial', 'vencido')
            AND ($1::text IS NULL OR p.status = $1)
        GROUP BY m.id, m.first_name, m.last_name, m.is_member, c.name
        HAVING ($2::numeric IS NULL OR COALESCE(SUM(p.balance), 0) >= $2)
            AND ($3::int IS NULL OR COUNT(p.id) >= $3)
        ORDER BY total_debt DESC, pending_months DESC
    `
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	var minDebt *string
	if filter.MinDebt != nil {
		d := filter.MinDebt.String()
		minDebt = &d
	}
	rows, err := r.db.Query(ctx, query, status, minDebt, filter.MinMonths)
	if err != nil {
		zap.L().Error("can't get debtors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var debtors []domain.Debtor
	for rows.Next() {
		var d domain.Debtor
		err := rows.Scan(&d.MemberID, &d.FirstName, &d.LastName, &d.IsMember, &d.CategoryName,
			&d.PendingMonths, &d.TotalDebt, &d.OldestPeriod, &d.NewestPeriod)
		if err != nil {
			zap.L().Error("can't scan debtor row", zap.Error(err))
			return nil, err
		}
		debtors = append(debtors, d)
	}
	return debtors, rows.Err()
}
