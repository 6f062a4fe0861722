package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// BannerHandler handles banner endpoints, admin and public.
type BannerHandler struct {
	bannerService service.BannerService
}

// NewBannerHandler creates a new banner handler.
func NewBannerHandler(bannerService service.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// BannerRequest is the create/update body.
type BannerRequest struct {
	Title        string `json:"title"`
	Image        string `json:"image" validate:"required"`
	LinkURL      string `json:"link_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (r BannerRequest) toModel() *model.Banner {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Banner{
		Title:        r.Title,
		Image:        r.Image,
		LinkURL:      r.LinkURL,
		DisplayOrder: r.DisplayOrder,
		IsActive:     active,
	}
}

// ReorderRequest is an ordered list of banner ids; index becomes display order.
type ReorderRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

// List godoc
// @Summary List banners
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/banners [get]
func (h *BannerHandler) List(c echo.Context) error {
	filter := listFilter(c)
	banners, total, err := h.bannerService.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, banners, total, filter.Page, filter.PerPage)
}

// Get godoc
// @Summary Get one banner
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Banner id"
// @Success 200 {object} response.Body
// @Router /admin/banners/{id} [get]
func (h *BannerHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	banner, err := h.bannerService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, banner)
}

// Create godoc
// @Summary Create a banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BannerRequest true "Banner"
// @Success 200 {object} response.Body
// @Router /admin/banners [post]
func (h *BannerHandler) Create(c echo.Context) error {
	var req BannerRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	banner := req.toModel()
	if err := h.bannerService.Create(c.Request().Context(), banner); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "banner created", echo.Map{"id": banner.ID})
}

// Update godoc
// @Summary Update a banner (full-row replace)
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BannerRequest true "Banner with id"
// @Success 200 {object} response.Body
// @Router /admin/banners [put]
func (h *BannerHandler) Update(c echo.Context) error {
	var req struct {
		ID uint `json:"id" validate:"required"`
		BannerRequest
	}
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	banner := req.toModel()
	banner.ID = req.ID
	if err := h.bannerService.Update(c.Request().Context(), banner); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "banner updated", nil)
}

// Delete godoc
// @Summary Delete a banner
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Banner id"
// @Success 200 {object} response.Body
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.bannerService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "banner deleted", nil)
}

// Reorder godoc
// @Summary Reorder banners
// @Description Writes each id's list position as its display order. Best effort.
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderRequest true "Ordered banner ids"
// @Success 200 {object} response.Body
// @Router /admin/banners/reorder [put]
func (h *BannerHandler) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.bannerService.Reorder(c.Request().Context(), req.IDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "banners reordered", echo.Map{"updated": updated})
}

// PublicList godoc
// @Summary List active banners for the storefront
// @Tags public
// @Produce json
// @Success 200 {object} response.Body
// @Router /banners [get]
func (h *BannerHandler) PublicList(c echo.Context) error {
	banners, err := h.bannerService.ListActive(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, banners)
}
