package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// OrderHandler handles order endpoints: read and status update only.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderStatusRequest updates one order's status.
type OrderStatusRequest struct {
	ID     uint              `json:"id" validate:"required"`
	Status model.OrderStatus `json:"status" validate:"required"`
}

// List godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Customer name or mobile"
// @Param order_status query string false "Status filter"
// @Success 200 {object} response.Body
// @Router /admin/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	filter := listFilter(c)
	orders, total, err := h.orderService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, orders, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one order with items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Success 200 {object} response.Body
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	order, err := h.orderService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, order)
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderStatusRequest true "Order id and new status"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/orders [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.orderService.UpdateStatus(c.Request().Context(), req.ID, req.Status); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "order status updated", nil)
}
