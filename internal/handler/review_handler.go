package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice/internal/response"
	"backoffice/internal/service"
)

// ReviewHandler handles public review submission and admin moderation.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// HelpfulRequest marks one review as helpful.
type HelpfulRequest struct {
	ReviewID uint `json:"review_id" validate:"required"`
}

// ReviewActiveRequest toggles a review's active flag.
type ReviewActiveRequest struct {
	ID       uint  `json:"id" validate:"required"`
	IsActive *bool `json:"is_active" validate:"required"`
}

// Submit godoc
// @Summary Submit a product review
// @Description Inserts the review and recomputes the product's aggregate rating atomically.
// @Tags public
// @Accept json
// @Produce json
// @Param request body service.ReviewInput true "Review"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /reviews [post]
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req service.ReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	review, err := h.reviewService.Submit(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "review submitted", review)
}

// PublicList godoc
// @Summary List active reviews for a product
// @Tags public
// @Produce json
// @Param product_id query int true "Product id"
// @Success 200 {object} response.Body
// @Router /reviews [get]
func (h *ReviewHandler) PublicList(c echo.Context) error {
	productID, err := strconv.ParseUint(c.QueryParam("product_id"), 10, 32)
	if err != nil || productID == 0 {
		return response.Fail(c, http.StatusBadRequest, "product_id is required")
	}
	page, perPage := response.ParsePage(c)

	reviews, total, err := h.reviewService.ListPublic(c.Request().Context(), uint(productID), page, perPage)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, reviews, total, page, perPage)
}

// MarkHelpful godoc
// @Summary Increment a review's helpful counter
// @Tags public
// @Accept json
// @Produce json
// @Param request body HelpfulRequest true "Review id"
// @Success 200 {object} response.Body
// @Router /reviews/helpful [put]
func (h *ReviewHandler) MarkHelpful(c echo.Context) error {
	var req HelpfulRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.reviewService.MarkHelpful(c.Request().Context(), req.ReviewID); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "marked helpful", nil)
}

// AdminList godoc
// @Summary List all reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/reviews [get]
func (h *ReviewHandler) AdminList(c echo.Context) error {
	filter := listFilter(c)
	reviews, total, err := h.reviewService.ListAdmin(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Page(c, reviews, total, filter.Page, filter.PerPage)
}

// SetActive godoc
// @Summary Toggle a review's active flag
// @Description Recomputes the product aggregates in the same transaction.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReviewActiveRequest true "Review id and flag"
// @Success 200 {object} response.Body
// @Router /admin/reviews [put]
func (h *ReviewHandler) SetActive(c echo.Context) error {
	var req ReviewActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.reviewService.SetActive(c.Request().Context(), req.ID, *req.IsActive); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "review updated", nil)
}

// Delete godoc
// @Summary Delete a review
// @Description Removes the review and recomputes the product aggregates atomically.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review id"
// @Success 200 {object} response.Body
// @Router /admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.reviewService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "review deleted", nil)
}
