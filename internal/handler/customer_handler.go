package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/response"
	"backoffice/internal/service"
)

// CustomerHandler handles customer endpoints: read and active-flag update.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CustomerActiveRequest toggles one customer's active flag.
type CustomerActiveRequest struct {
	ID       uint  `json:"id" validate:"required"`
	IsActive *bool `json:"is_active" validate:"required"`
}

// List godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, mobile, or email"
// @Success 200 {object} response.Body
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	filter := listFilter(c)
	customers, total, err := h.customerService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, customers, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one customer with addresses
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer id"
// @Success 200 {object} response.Body
// @Router /admin/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	customer, err := h.customerService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, customer)
}

// SetActive godoc
// @Summary Toggle a customer's active flag
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CustomerActiveRequest true "Customer id and flag"
// @Success 200 {object} response.Body
// @Router /admin/customers [put]
func (h *CustomerHandler) SetActive(c echo.Context) error {
	var req CustomerActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.customerService.SetActive(c.Request().Context(), req.ID, *req.IsActive); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "customer updated", nil)
}
