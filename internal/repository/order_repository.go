package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// OrderRepository manages persistence for orders and payments.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository constructs an OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order and fills the generated ID.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	const query = `INSERT INTO orders (user_id, course_id, order_date, status) VALUES ($1, $2, $3, $4) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, order.UserID, order.CourseID, order.OrderDate, order.Status)
	if err := row.Scan(&order.ID); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// FindByID fetches an order joined with buyer and course.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*models.OrderDetail, error) {
	const query = `SELECT o.id, o.user_id, o.course_id, o.order_date, o.status,
		c.name AS course_name, u.full_name AS user_full_name, u.email AS user_email
		FROM orders o
		JOIN courses c ON c.id = o.course_id
		JOIN users u ON u.id = o.user_id
		WHERE o.id = $1 LIMIT 1`
	var detail models.OrderDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return &detail, nil
}

// ListByUser returns a user's orders ordered by primary key.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.SelectContext(ctx, &orders, `SELECT id, user_id, course_id, order_date, status FROM orders WHERE user_id = $1 ORDER BY id ASC`, userID); err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return orders, nil
}

// UpdateStatus transitions an order and reports how many rows matched.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update order status rows: %w", err)
	}
	return affected, nil
}

// CreatePayment records money received against an order.
func (r *OrderRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	const query = `INSERT INTO payments (order_id, amount, paid_at) VALUES ($1, $2, $3) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, payment.OrderID, payment.Amount, payment.PaidAt)
	if err := row.Scan(&payment.ID); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// ListPayments returns the payments of an order ordered by primary key.
func (r *OrderRepository) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, `SELECT id, order_id, amount, paid_at FROM payments WHERE order_id = $1 ORDER BY id ASC`, orderID); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
