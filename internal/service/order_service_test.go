package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/export"
)

type orderRepoStub struct {
	orders   map[int64]*models.OrderDetail
	payments map[int64][]models.Payment
	nextID   int64
	err      error
}

func newOrderRepoStub() *orderRepoStub {
	return &orderRepoStub{
		orders:   make(map[int64]*models.OrderDetail),
		payments: make(map[int64][]models.Payment),
		nextID:   1,
	}
}

func (s *orderRepoStub) Create(ctx context.Context, order *models.Order) error {
	if s.err != nil {
		return s.err
	}
	order.ID = s.nextID
	s.nextID++
	s.orders[order.ID] = &models.OrderDetail{Order: *order, CourseName: "Belajar Go"}
	return nil
}

func (s *orderRepoStub) FindByID(ctx context.Context, id int64) (*models.OrderDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	if o, ok := s.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (s *orderRepoStub) ListByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, o.Order)
		}
	}
	return result, nil
}

func (s *orderRepoStub) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	o, ok := s.orders[id]
	if !ok {
		return 0, nil
	}
	o.Status = status
	return 1, nil
}

func (s *orderRepoStub) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if s.err != nil {
		return s.err
	}
	payment.ID = int64(len(s.payments[payment.OrderID]) + 1)
	s.payments[payment.OrderID] = append(s.payments[payment.OrderID], *payment)
	return nil
}

func (s *orderRepoStub) ListPayments(ctx context.Context, orderID int64) ([]models.Payment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payments[orderID], nil
}

type pdfRendererStub struct {
	lastTitle string
	lastData  export.Dataset
}

func (s *pdfRendererStub) Render(data export.Dataset, title string) ([]byte, error) {
	s.lastData = data
	s.lastTitle = title
	return []byte("%PDF-stub"), nil
}

func TestOrderServiceCreateStartsPending(t *testing.T) {
	repo := newOrderRepoStub()
	svc := NewOrderService(repo, &pdfRendererStub{}, nil, nil)

	order, err := svc.Create(context.Background(), 4, CreateOrderRequest{CourseID: 9})
	require.NoError(t, err)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, int64(4), order.UserID)
	assert.False(t, order.OrderDate.IsZero())
}

func TestOrderServiceUpdateStatusRejectsUnknownState(t *testing.T) {
	svc := NewOrderService(newOrderRepoStub(), &pdfRendererStub{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 1, UpdateOrderStatusRequest{Status: "Refunded"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOrderServiceUpdateStatusNotFound(t *testing.T) {
	svc := NewOrderService(newOrderRepoStub(), &pdfRendererStub{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 42, UpdateOrderStatusRequest{Status: models.OrderCompleted})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestOrderServiceUpdateStatusTransitions(t *testing.T) {
	repo := newOrderRepoStub()
	svc := NewOrderService(repo, &pdfRendererStub{}, nil, nil)
	_, err := svc.Create(context.Background(), 4, CreateOrderRequest{CourseID: 9})
	require.NoError(t, err)

	order, err := svc.UpdateStatus(context.Background(), 1, UpdateOrderStatusRequest{Status: models.OrderCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, order.Status)
}

func TestOrderServiceAddPaymentUnknownOrder(t *testing.T) {
	svc := NewOrderService(newOrderRepoStub(), &pdfRendererStub{}, nil, nil)

	_, err := svc.AddPayment(context.Background(), 42, CreatePaymentRequest{Amount: 150000})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestOrderServiceAddPaymentRoundsAmount(t *testing.T) {
	repo := newOrderRepoStub()
	svc := NewOrderService(repo, &pdfRendererStub{}, nil, nil)
	_, err := svc.Create(context.Background(), 4, CreateOrderRequest{CourseID: 9})
	require.NoError(t, err)

	payment, err := svc.AddPayment(context.Background(), 1, CreatePaymentRequest{Amount: 150000.005})
	require.NoError(t, err)
	assert.Equal(t, 150000.01, payment.Amount)
	assert.False(t, payment.PaidAt.IsZero())
}

func TestOrderServiceReceipt(t *testing.T) {
	repo := newOrderRepoStub()
	pdf := &pdfRendererStub{}
	svc := NewOrderService(repo, pdf, nil, nil)

	_, err := svc.Create(context.Background(), 4, CreateOrderRequest{CourseID: 9})
	require.NoError(t, err)
	repo.payments[1] = []models.Payment{{ID: 1, OrderID: 1, Amount: 150000, PaidAt: time.Now()}}

	rendered, err := svc.Receipt(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, rendered)
	assert.Contains(t, pdf.lastTitle, "Belajar Go")
	require.Len(t, pdf.lastData.Rows, 1)
	assert.Equal(t, "150000.00", pdf.lastData.Rows[0]["Amount"])
}

func TestOrderServiceReceiptUnknownOrder(t *testing.T) {
	svc := NewOrderService(newOrderRepoStub(), &pdfRendererStub{}, nil, nil)

	_, err := svc.Receipt(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
