package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backoffice/internal/config"
	"backoffice/internal/handler"
	"backoffice/internal/response"
	"backoffice/internal/service"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Banner    *handler.BannerHandler
	Popup     *handler.PopupHandler
	Menu      *handler.MenuHandler
	Order     *handler.OrderHandler
	Customer  *handler.CustomerHandler
	Review    *handler.ReviewHandler
	Dashboard *handler.DashboardHandler
	Upload    *handler.UploadHandler
}

// Register wires routes and middleware. Literal routes are registered
// alongside parametric ones; echo's router always prefers the more
// specific match, so /admin/menu-items/bulk-update is never shadowed by
// /admin/menu-items/:id.
func Register(e *echo.Echo, cfg *config.Config, authService service.AuthService, h Handlers) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Static("/uploads", cfg.UploadDir)

	// Public storefront routes
	e.GET("/banners", h.Banner.PublicList)
	e.GET("/popups", h.Popup.PublicList)
	e.GET("/menu", h.Menu.PublicMenu)
	e.GET("/reviews", h.Review.PublicList)
	e.POST("/reviews", h.Review.Submit)
	e.PUT("/reviews/helpful", h.Review.MarkHelpful)

	admin := e.Group("/admin")
	admin.POST("/auth/login", h.Auth.Login)

	// Everything else under /admin requires a session
	secured := admin.Group("", RequireSession(authService))

	secured.POST("/auth/verify", h.Auth.Verify)
	secured.POST("/auth/logout", h.Auth.Logout)

	secured.GET("/dashboard", h.Dashboard.Stats)

	secured.GET("/products", h.Product.List)
	secured.GET("/products/:id", h.Product.Get)
	secured.POST("/products", h.Product.Create)
	secured.PUT("/products", h.Product.Update)
	secured.DELETE("/products/:id", h.Product.Delete)

	secured.GET("/categories", h.Category.List)
	secured.GET("/categories/:id", h.Category.Get)
	secured.POST("/categories", h.Category.Create)
	secured.PUT("/categories", h.Category.Update)
	secured.DELETE("/categories/:id", h.Category.Delete)

	secured.GET("/banners", h.Banner.List)
	secured.GET("/banners/:id", h.Banner.Get)
	secured.POST("/banners", h.Banner.Create)
	secured.PUT("/banners", h.Banner.Update)
	secured.PUT("/banners/reorder", h.Banner.Reorder)
	secured.DELETE("/banners/:id", h.Banner.Delete)

	secured.GET("/popups", h.Popup.List)
	secured.GET("/popups/:id", h.Popup.Get)
	secured.POST("/popups", h.Popup.Create)
	secured.PUT("/popups", h.Popup.Update)
	secured.DELETE("/popups/:id", h.Popup.Delete)

	secured.GET("/menu-items", h.Menu.ListItems)
	secured.GET("/menu-items/:id", h.Menu.GetItem)
	secured.POST("/menu-items", h.Menu.CreateItem)
	secured.PUT("/menu-items", h.Menu.UpdateItem)
	secured.PUT("/menu-items/bulk-update", h.Menu.BulkUpdateItems)
	secured.DELETE("/menu-items/:id", h.Menu.DeleteItem)

	secured.GET("/menu-categories", h.Menu.ListCategories)
	secured.GET("/menu-categories/:id", h.Menu.GetCategory)
	secured.POST("/menu-categories", h.Menu.CreateCategory)
	secured.PUT("/menu-categories", h.Menu.UpdateCategory)
	secured.DELETE("/menu-categories/:id", h.Menu.DeleteCategory)

	secured.GET("/orders", h.Order.List)
	secured.GET("/orders/:id", h.Order.Get)
	secured.PUT("/orders", h.Order.UpdateStatus)

	secured.GET("/customers", h.Customer.List)
	secured.GET("/customers/:id", h.Customer.Get)
	secured.PUT("/customers", h.Customer.SetActive)

	secured.GET("/reviews", h.Review.AdminList)
	secured.PUT("/reviews", h.Review.SetActive)
	secured.DELETE("/reviews/:id", h.Review.Delete)

	secured.POST("/upload/:type", h.Upload.Upload)
}

// RequireSession resolves the bearer token to an admin principal and puts
// it on the context, or rejects with 401.
func RequireSession(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			admin, err := authService.Verify(c.Request().Context(), token)
			if err != nil {
				return response.Fail(c, http.StatusUnauthorized, "authentication required")
			}
			c.Set("admin", admin)
			c.Set("session_token", token)
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
