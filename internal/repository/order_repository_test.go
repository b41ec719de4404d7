package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/internal/models"
)

func newOrderMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestOrderRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newOrderMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(4), int64(9), now, models.OrderPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	order := &models.Order{UserID: 4, CourseID: 9, OrderDate: now, Status: models.OrderPending}
	err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(21), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newOrderMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "course_id", "order_date", "status", "course_name", "user_full_name", "user_email"}).
		AddRow(int64(21), int64(4), int64(9), time.Now(), "Pending", "Belajar Go", "Budi Santoso", "budi@example.com")
	mock.ExpectQuery("SELECT o.id, o.user_id, o.course_id, o.order_date, o.status").
		WithArgs(int64(21)).
		WillReturnRows(rows)

	detail, err := repo.FindByID(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, detail.Status)
	assert.Equal(t, "Belajar Go", detail.CourseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newOrderMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $2 WHERE id = $1")).
		WithArgs(int64(21), models.OrderCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(context.Background(), 21, models.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreatePayment(t *testing.T) {
	db, mock, cleanup := newOrderMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(int64(21), 150000.0, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	payment := &models.Payment{OrderID: 21, Amount: 150000, PaidAt: now}
	err := repo.CreatePayment(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, int64(3), payment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryListPayments(t *testing.T) {
	db, mock, cleanup := newOrderMock(t)
	defer cleanup()
	repo := NewOrderRepository(db)

	rows := sqlmock.NewRows([]string{"id", "order_id", "amount", "paid_at"}).
		AddRow(int64(3), int64(21), 150000.0, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_id, amount, paid_at FROM payments WHERE order_id = $1 ORDER BY id ASC")).
		WithArgs(int64(21)).
		WillReturnRows(rows)

	payments, err := repo.ListPayments(context.Background(), 21)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
