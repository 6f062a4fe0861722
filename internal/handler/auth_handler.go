package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginData is the payload returned on successful login.
type LoginData struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /admin/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, LoginData{Token: token, Admin: admin})
}

// Verify godoc
// @Summary Verify the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /admin/auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	admin := c.Get("admin").(*model.Admin)
	return response.OK(c, admin)
}

// Logout godoc
// @Summary Invalidate the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /admin/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("session_token").(string)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "logged out", nil)
}
