package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// CategoryHandler handles product category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest is the create/update body.
type CategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (r CategoryRequest) toModel() *model.Category {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Category{
		Name:         r.Name,
		Description:  r.Description,
		Image:        r.Image,
		DisplayOrder: r.DisplayOrder,
		IsActive:     active,
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	filter := listFilter(c)
	categories, total, err := h.categoryService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, categories, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} response.Body
// @Router /admin/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category"
// @Success 200 {object} response.Body
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	category := req.toModel()
	if err := h.categoryService.Create(c.Request().Context(), category); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "category created", echo.Map{"id": category.ID})
}

// Update godoc
// @Summary Update a category (full-row replace)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category with id"
// @Success 200 {object} response.Body
// @Router /admin/categories [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		CategoryRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	category := req.toModel()
	category.ID = req.ID
	if err := h.categoryService.Update(c.Request().Context(), category); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "category updated", nil)
}

// Delete godoc
// @Summary Delete a category
// @Description Fails when products still reference the category.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "category deleted", nil)
}
