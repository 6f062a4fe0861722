package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// MenuHandler handles menu item and menu category endpoints.
type MenuHandler struct {
	menuService service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// MenuItemRequest is the create/update body for a menu item.
type MenuItemRequest struct {
	MenuCategoryID uint            `json:"menu_category_id" validate:"required"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" validate:"required"`
	Image          string          `json:"image"`
	DisplayOrder   int             `json:"display_order"`
	IsActive       *bool           `json:"is_active"`
}

func (r MenuItemRequest) toModel() *model.MenuItem {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.MenuItem{
		MenuCategoryID: r.MenuCategoryID,
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Image:          r.Image,
		DisplayOrder:   r.DisplayOrder,
		IsActive:       active,
	}
}

// MenuCategoryRequest is the create/update body for a menu category.
type MenuCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (r MenuCategoryRequest) toModel() *model.MenuCategory {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.MenuCategory{
		Name:         r.Name,
		DisplayOrder: r.DisplayOrder,
		IsActive:     active,
	}
}

// BulkUpdateRequest is a list of partial menu item patches.
type BulkUpdateRequest struct {
	Items []service.MenuItemPatch `json:"items" validate:"required,min=1"`
}

// ListItems godoc
// @Summary List menu items
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/menu-items [get]
func (h *MenuHandler) ListItems(c echo.Context) error {
	filter := listFilter(c)
	items, total, err := h.menuService.ListItems(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, items, total, filter.Page, filter.PerPage)
}

// GetItem godoc
// @Summary Get one menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item id"
// @Success 200 {object} response.Body
// @Router /admin/menu-items/{id} [get]
func (h *MenuHandler) GetItem(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	item, err := h.menuService.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, item)
}

// CreateItem godoc
// @Summary Create a menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuItemRequest true "Menu item"
// @Success 200 {object} response.Body
// @Router /admin/menu-items [post]
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	item := req.toModel()
	if err := h.menuService.CreateItem(c.Request().Context(), item); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu item created", echo.Map{"id": item.ID})
}

// UpdateItem godoc
// @Summary Update a menu item (full-row replace)
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuItemRequest true "Menu item with id"
// @Success 200 {object} response.Body
// @Router /admin/menu-items [put]
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		MenuItemRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	item := req.toModel()
	item.ID = req.ID
	if err := h.menuService.UpdateItem(c.Request().Context(), item); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu item updated", nil)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item id"
// @Success 200 {object} response.Body
// @Router /admin/menu-items/{id} [delete]
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.menuService.DeleteItem(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu item deleted", nil)
}

// BulkUpdateItems godoc
// @Summary Bulk-update menu items
// @Description Applies partial patches. Entries without an id are skipped; the response reports how many rows were updated.
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkUpdateRequest true "Patches"
// @Success 200 {object} response.Body
// @Router /admin/menu-items/bulk-update [put]
func (h *MenuHandler) BulkUpdateItems(c echo.Context) error {
	var req BulkUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.menuService.BulkUpdateItems(c.Request().Context(), req.Items)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu items updated", echo.Map{"updated": updated})
}

// ListCategories godoc
// @Summary List menu categories
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/menu-categories [get]
func (h *MenuHandler) ListCategories(c echo.Context) error {
	filter := listFilter(c)
	categories, total, err := h.menuService.ListCategories(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, categories, total, filter.Page, filter.PerPage)
}

// GetCategory godoc
// @Summary Get one menu category
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu category id"
// @Success 200 {object} response.Body
// @Router /admin/menu-categories/{id} [get]
func (h *MenuHandler) GetCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	category, err := h.menuService.GetCategory(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, category)
}

// CreateCategory godoc
// @Summary Create a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuCategoryRequest true "Menu category"
// @Success 200 {object} response.Body
// @Router /admin/menu-categories [post]
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req MenuCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	category := req.toModel()
	if err := h.menuService.CreateCategory(c.Request().Context(), category); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu category created", echo.Map{"id": category.ID})
}

// UpdateCategory godoc
// @Summary Update a menu category (full-row replace)
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MenuCategoryRequest true "Menu category with id"
// @Success 200 {object} response.Body
// @Router /admin/menu-categories [put]
func (h *MenuHandler) UpdateCategory(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		MenuCategoryRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	category := req.toModel()
	category.ID = req.ID
	if err := h.menuService.UpdateCategory(c.Request().Context(), category); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu category updated", nil)
}

// DeleteCategory godoc
// @Summary Delete a menu category
// @Description Fails when menu items still reference the category.
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu category id"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /admin/menu-categories/{id} [delete]
func (h *MenuHandler) DeleteCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.menuService.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "menu category deleted", nil)
}

// PublicMenu godoc
// @Summary Storefront menu
// @Tags public
// @Produce json
// @Success 200 {object} response.Body
// @Router /menu [get]
func (h *MenuHandler) PublicMenu(c echo.Context) error {
	menu, err := h.menuService.PublicMenu(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, menu)
}
