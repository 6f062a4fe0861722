package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// ProductHandler handles catalog product endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest is the create/update body. Update has full-row replace
// semantics: omitted optional fields reset to their zero values.
type ProductRequest struct {
	CategoryID    uint             `json:"category_id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Stock         int              `json:"stock"`
	Image         string           `json:"image"`
	DisplayOrder  int              `json:"display_order"`
	IsActive      *bool            `json:"is_active"`
}

func (r ProductRequest) toModel() *model.Product {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Product{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		Stock:         r.Stock,
		Image:         r.Image,
		DisplayOrder:  r.DisplayOrder,
		IsActive:      active,
	}
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search"
// @Param category_id query int false "Category filter"
// @Param status query string false "active or inactive"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Body
// @Router /admin/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := listFilter(c)
	products, total, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, products, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} response.Body
// @Router /admin/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	// unknown id is an empty success, not an error
	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	product := req.toModel()
	if err := h.productService.Create(c.Request().Context(), product); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "product created", echo.Map{"id": product.ID})
}

// Update godoc
// @Summary Update a product (full-row replace)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product with id"
// @Success 200 {object} response.Body
// @Router /admin/products [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		ProductRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	product := req.toModel()
	product.ID = req.ID
	if err := h.productService.Update(c.Request().Context(), product); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "product updated", nil)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} response.Body
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "product deleted", nil)
}
