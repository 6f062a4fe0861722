package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// PopupHandler handles popup endpoints, admin and public.
type PopupHandler struct {
	popupService service.PopupService
}

// NewPopupHandler creates a new popup handler.
func NewPopupHandler(popupService service.PopupService) *PopupHandler {
	return &PopupHandler{popupService: popupService}
}

// PopupRequest is the create/update body. StartsAt/EndsAt bound the
// scheduling window; either side may be omitted.
type PopupRequest struct {
	Title        string     `json:"title"`
	Image        string     `json:"image" validate:"required"`
	LinkURL      string     `json:"link_url"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	DisplayOrder int        `json:"display_order"`
	IsActive     *bool      `json:"is_active"`
}

func (r PopupRequest) toModel() *model.Popup {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Popup{
		Title:        r.Title,
		Image:        r.Image,
		LinkURL:      r.LinkURL,
		StartsAt:     r.StartsAt,
		EndsAt:       r.EndsAt,
		DisplayOrder: r.DisplayOrder,
		IsActive:     active,
	}
}

// List godoc
// @Summary List popups
// @Tags popups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/popups [get]
func (h *PopupHandler) List(c echo.Context) error {
	filter := listFilter(c)
	popups, total, err := h.popupService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, popups, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one popup
// @Tags popups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Popup id"
// @Success 200 {object} response.Body
// @Router /admin/popups/{id} [get]
func (h *PopupHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	popup, err := h.popupService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, popup)
}

// Create godoc
// @Summary Create a popup
// @Tags popups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PopupRequest true "Popup"
// @Success 200 {object} response.Body
// @Router /admin/popups [post]
func (h *PopupHandler) Create(c echo.Context) error {
	var req PopupRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	popup := req.toModel()
	if err := h.popupService.Create(c.Request().Context(), popup); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "popup created", echo.Map{"id": popup.ID})
}

// Update godoc
// @Summary Update a popup (full-row replace)
// @Tags popups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PopupRequest true "Popup with id"
// @Success 200 {object} response.Body
// @Router /admin/popups [put]
func (h *PopupHandler) Update(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		PopupRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	popup := req.toModel()
	popup.ID = req.ID
	if err := h.popupService.Update(c.Request().Context(), popup); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "popup updated", nil)
}

// Delete godoc
// @Summary Delete a popup
// @Tags popups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Popup id"
// @Success 200 {object} response.Body
// @Router /admin/popups/{id} [delete]
func (h *PopupHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.popupService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "popup deleted", nil)
}

// PublicList godoc
// @Summary List live popups for the storefront
// @Tags public
// @Produce json
// @Success 200 {object} response.Body
// @Router /popups [get]
func (h *PopupHandler) PublicList(c echo.Context) error {
	popups, err := h.popupService.ListLive(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, popups)
}
