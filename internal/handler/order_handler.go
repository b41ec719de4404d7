package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelasin/kelasin-api/internal/service"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/response"
)

// OrderHandler exposes order, payment and receipt endpoints.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler constructs an order handler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

// Create godoc
// @Summary Place an order for a course
// @Tags Orders
// @Accept json
// @Produce json
// @Param payload body service.CreateOrderRequest true "Order payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /order [post]
func (h *OrderHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Unauthorized"))
		return
	}
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	order, err := h.service.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, order, "Order created successfully.")
}

// ListMine godoc
// @Summary List the authenticated user's orders
// @Tags Orders
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "Unauthorized"))
		return
	}
	orders, err := h.service.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(orders) == 0 {
		response.Message(c, "No orders found.")
		return
	}
	response.OK(c, orders)
}

// Get godoc
// @Summary Get an order with buyer and course detail
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// UpdateStatus godoc
// @Summary Transition an order's status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payload body service.UpdateOrderStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order/{id} [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	order, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// AddPayment godoc
// @Summary Record a payment against an order
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param payload body service.CreatePaymentRequest true "Payment payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /order/{id}/payment [post]
func (h *OrderHandler) AddPayment(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	payment, err := h.service.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, payment, "Payment recorded successfully.")
}

// ListPayments godoc
// @Summary List an order's payments
// @Tags Payments
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order/{id}/payment [get]
func (h *OrderHandler) ListPayments(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	payments, err := h.service.ListPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(payments) == 0 {
		response.Message(c, "No payments found.")
		return
	}
	response.OK(c, payments)
}

// Receipt godoc
// @Summary Download an order receipt as PDF
// @Tags Payments
// @Produce application/pdf
// @Param id path int true "Order ID"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /order/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	rendered, err := h.service.Receipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("order-%d-receipt.pdf", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", rendered)
}
