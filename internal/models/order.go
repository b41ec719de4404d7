package models

import "time"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid reports whether the status belongs to the enumerated set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order records a purchase attempt for a course.
type Order struct {
	ID        int64       `db:"id" json:"id"`
	UserID    int64       `db:"user_id" json:"user_id"`
	CourseID  int64       `db:"course_id" json:"course_id"`
	OrderDate time.Time   `db:"order_date" json:"order_date"`
	Status    OrderStatus `db:"status" json:"status"`
}

// Payment records money received against an order.
type Payment struct {
	ID      int64     `db:"id" json:"id"`
	OrderID int64     `db:"order_id" json:"order_id"`
	Amount  float64   `db:"amount" json:"amount"`
	PaidAt  time.Time `db:"paid_at" json:"paid_at"`
}

// OrderDetail joins order, buyer and course for receipts.
type OrderDetail struct {
	Order
	CourseName   string `db:"course_name" json:"course_name"`
	UserFullName string `db:"user_full_name" json:"user_full_name"`
	UserEmail    string `db:"user_email" json:"user_email"`
}
