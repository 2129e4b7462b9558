package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MemberStatus string

const (
	MemberActive   MemberStatus = "activo"
	MemberInactive MemberStatus = "inactivo"
)

type PaymentType string

const (
	PaymentTypeNone     PaymentType = "sin_pago"
	PaymentTypePartial  PaymentType = "parcial"
	PaymentTypeMinimum  PaymentType = "minimo"
	PaymentTypeComplete PaymentType = "completo"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pendiente"
	PaymentPartial PaymentStatus = "parcial"
	PaymentPaid    PaymentStatus = "pagado"
	PaymentOverdue PaymentStatus = "vencido"
)

// Valid reports whether s is one of the four payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentOverdue:
		return true
	}
	return false
}

// Unsettled reports whether a period in this state counts as a debt month.
func (s PaymentStatus) Unsettled() bool {
	return s == PaymentPending || s == PaymentPartial || s == PaymentOverdue
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pendiente"
	OrderPaid      OrderStatus = "pagado"
	OrderDelivered OrderStatus = "entregado"
	OrderCancelled OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductAvailable ProductStatus = "disponible"
	ProductActive    ProductStatus = "activo"
	ProductInactive  ProductStatus = "inactivo"
)

// Sellable reports whether the product can be ordered. Both "disponible" and
// "activo" are in use for available products.
func (s ProductStatus) Sellable() bool {
	return s == ProductAvailable || s == ProductActive
}

type Category struct {
	ID              int             `db:"id"`
	Name            string          `db:"name"`
	AmountMember    decimal.Decimal `db:"amount_member"`
	AmountNonMember decimal.Decimal `db:"amount_non_member"`
}

type Member struct {
	ID         int          `db:"id"`
	FirstName  string       `db:"first_name"`
	LastName   string       `db:"last_name"`
	CategoryID int          `db:"category_id"`
	IsMember   bool         `db:"is_member"`
	Status     MemberStatus `db:"status"`
}

func (m *Member) Active() bool {
	return m.Status == MemberActive
}

// MemberFee is a member joined with the fee amounts of its category.
type MemberFee struct {
	MemberID        int             `db:"member_id"`
	IsMember        bool            `db:"is_member"`
	Status          MemberStatus    `db:"status"`
	AmountMember    decimal.Decimal `db:"amount_member"`
	AmountNonMember decimal.Decimal `db:"amount_non_member"`
}

type Payment struct {
	ID            int             `db:"id"`
	MemberID      int             `db:"member_id"`
	PeriodMonth   int             `db:"period_month"`
	PeriodYear    int             `db:"period_year"`
	AmountDue     decimal.Decimal `db:"amount_due"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Balance       decimal.Decimal `db:"balance"`
	PaymentType   PaymentType     `db:"payment_type"`
	Status        PaymentStatus   `db:"status"`
	DueDate       time.Time       `db:"due_date"`
	PaymentMethod *string         `db:"payment_method"`
	PaymentDate   *time.Time      `db:"payment_date"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Product struct {
	ID          int             `db:"id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Stock       int             `db:"stock"`
	MembersOnly bool            `db:"members_only"`
	Status      ProductStatus   `db:"status"`
}

type Order struct {
	ID            int             `db:"id"`
	MemberID      int             `db:"member_id"`
	Total         decimal.Decimal `db:"total"`
	Status        OrderStatus     `db:"status"`
	PaymentMethod *string         `db:"payment_method"`
	Notes         *string         `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Items         []OrderItem     `db:"-"`
}

type OrderItem struct {
	ID        int             `db:"id"`
	OrderID   int             `db:"order_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Subtotal  decimal.Decimal `db:"subtotal"`
}
