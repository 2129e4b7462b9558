package repo

import (
	"testing"

	"github.com/GlebRadaev/clubledger/internal/pg"
	memberrepo "github.com/GlebRadaev/clubledger/internal/repo/member-repo"
	orderrepo "github.com/GlebRadaev/clubledger/internal/repo/order-repo"
	paymentrepo "github.com/GlebRadaev/clubledger/internal/repo/payment-repo"
	productrepo "github.com/GlebRadaev/clubledger/internal/repo/product-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.MemberRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.ProductRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.TXManager)

	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &productrepo.Repository{}, repo.ProductRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
