package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestTXManager_Begin(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE products SET stock = stock - $1 WHERE id = $2")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn) func(ctx context.Context) error
		expectErr string
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(query).WithArgs(1, 3).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, "UPDATE products SET stock = stock - $1 WHERE id = $2", 1, 3)
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(*Conn) func(ctx context.Context) error {
				return func(context.Context) error {
					return errors.New("out of stock")
				}
			},
			expectErr: "out of stock",
		},
		{
			name: "Begin fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("pool closed"))
			},
			fn: func(*Conn) func(ctx context.Context) error {
				return func(context.Context) error {
					t.Fatal("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: "begin transaction: pool closed",
		},
		{
			name: "Commit fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(*Conn) func(ctx context.Context) error {
				return func(context.Context) error { return nil }
			},
			expectErr: "commit transaction: serialization failure",
		},
		{
			name: "Nested call joins outer transaction",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(query).WithArgs(1, 3).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return NewTXManager(nil).Begin(ctx, func(ctx context.Context) error {
						_, err := conn.Exec(ctx, "UPDATE products SET stock = stock - $1 WHERE id = $2", 1, 3)
						return err
					})
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			conn := New(mock)
			err = NewTXManager(mock).Begin(context.Background(), tt.fn(conn))
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_BeginRollsBackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewTXManager(mock).Begin(context.Background(), func(context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_UsesPoolOutsideTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool := NewMockDatabase(ctrl)
	pool.EXPECT().Exec(gomock.Any(), "DELETE FROM orders WHERE id = $1", 5).Return(pgconn.NewCommandTag("DELETE 1"), nil)

	tag, err := New(pool).Exec(context.Background(), "DELETE FROM orders WHERE id = $1", 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), tag.RowsAffected())
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		check      bool
	}{
		{"Unique", &pgconn.PgError{Code: "23505"}, true, false, false},
		{"Foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), false, true, false},
		{"Check", &pgconn.PgError{Code: "23514"}, false, false, true},
		{"Other", errors.New("conn reset"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.check, IsCheckViolation(tt.err))
		})
	}
}
