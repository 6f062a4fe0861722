package main

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backoffice/docs"
	"backoffice/internal/cache"
	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/handler"
	"backoffice/internal/repository"
	"backoffice/internal/router"
	"backoffice/internal/service"
)

// @title Storefront Backoffice API
// @version 1.0
// @description Admin back office for the storefront: catalog, display, menu, orders, customers, and reviews.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	bannerRepo := repository.NewBannerRepository(gormDB)
	popupRepo := repository.NewPopupRepository(gormDB)
	menuRepo := repository.NewMenuRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(adminRepo, time.Duration(cfg.SessionTTLHours)*time.Hour)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	bannerService := service.NewBannerService(bannerRepo)
	popupService := service.NewPopupService(popupRepo)
	menuService := service.NewMenuService(menuRepo, cacheClient)
	orderService := service.NewOrderService(orderRepo)
	customerService := service.NewCustomerService(userRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, orderRepo, userRepo, reviewRepo, cacheClient)
	uploadService := service.NewUploadService(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadBytes)

	// Register routes
	router.Register(e, cfg, authService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Banner:    handler.NewBannerHandler(bannerService),
		Popup:     handler.NewPopupHandler(popupService),
		Menu:      handler.NewMenuHandler(menuService),
		Order:     handler.NewOrderHandler(orderService),
		Customer:  handler.NewCustomerHandler(customerService),
		Review:    handler.NewReviewHandler(reviewService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Upload:    handler.NewUploadHandler(uploadService),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
