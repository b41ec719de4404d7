package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/export"
)

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int64) (*models.OrderDetail, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (int64, error)
	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CourseID int64 `json:"course_id" validate:"required"`
}

// UpdateOrderStatusRequest transitions an order.
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// CreatePaymentRequest records money against an order.
type CreatePaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// OrderService handles orders, payments and receipts. Order and payment
// writes are independent statements; a crash between them can leave an
// order without its payment, an accepted limitation of the store model.
type OrderService struct {
	repo      orderRepository
	pdf       pdfRenderer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOrderService constructs the order service.
func NewOrderService(repo orderRepository, pdf pdfRenderer, validate *validator.Validate, logger *zap.Logger) *OrderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, pdf: pdf, validator: validate, logger: logger}
}

// Create places a Pending order for the authenticated user.
func (s *OrderService) Create(ctx context.Context, userID int64, req CreateOrderRequest) (*models.Order, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid order payload")
	}
	order := &models.Order{
		UserID:    userID,
		CourseID:  req.CourseID,
		OrderDate: time.Now().UTC(),
		Status:    models.OrderPending,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create order")
	}
	return order, nil
}

// Get returns an order with buyer and course attached.
func (s *OrderService) Get(ctx context.Context, id int64) (*models.OrderDetail, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}
	return order, nil
}

// ListMine returns the authenticated user's orders.
func (s *OrderService) ListMine(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list orders")
	}
	return orders, nil
}

// UpdateStatus transitions an order to another enumerated state.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, req UpdateOrderStatusRequest) (*models.OrderDetail, error) {
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be Pending, Completed or Cancelled")
	}
	affected, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update order")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Order not found")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload order")
	}
	return order, nil
}

// AddPayment records a payment against an existing order.
func (s *OrderService) AddPayment(ctx context.Context, orderID int64, req CreatePaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	if _, err := s.repo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Order not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load order")
	}
	payment := &models.Payment{
		OrderID: orderID,
		Amount:  roundPrice(req.Amount),
		PaidAt:  time.Now().UTC(),
	}
	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create payment")
	}
	return payment, nil
}

// ListPayments returns the payments recorded against an order.
func (s *OrderService) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	payments, err := s.repo.ListPayments(ctx, orderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}

// Receipt renders an order's payments into a PDF receipt.
func (s *OrderService) Receipt(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(ctx, orderID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}

	data := export.Dataset{
		Headers: []string{"Payment", "Amount", "Paid At"},
	}
	for _, p := range payments {
		data.Rows = append(data.Rows, map[string]string{
			"Payment": fmt.Sprintf("#%d", p.ID),
			"Amount":  fmt.Sprintf("%.2f", p.Amount),
			"Paid At": p.PaidAt.Format("2006-01-02 15:04"),
		})
	}

	title := fmt.Sprintf("Receipt order %d - %s", order.ID, order.CourseName)
	rendered, err := s.pdf.Render(data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt")
	}
	return rendered, nil
}
