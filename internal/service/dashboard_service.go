package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/cache"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const (
	dashboardCacheKey = "admin:dashboard"
	dashboardCacheTTL = 60 * time.Second
	dashboardTopN     = 5
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	Products      int64           `json:"products"`
	Categories    int64           `json:"categories"`
	Orders        int64           `json:"orders"`
	PendingOrders int64           `json:"pending_orders"`
	Customers     int64           `json:"customers"`
	Reviews       int64           `json:"reviews"`
	TopProducts   []model.Product `json:"top_products"`
	RecentOrders  []model.Order   `json:"recent_orders"`
}

// DashboardService aggregates counters for the admin dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	reviewRepo   repository.ReviewRepository
	cache        *cache.Client
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	cacheClient *cache.Client,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		reviewRepo:   reviewRepo,
		cache:        cacheClient,
	}
}

// Stats serves from the fail-safe cache when warm; counters may be up to
// a minute stale, which is fine for a dashboard.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.cache.GetJSON(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	stats := &DashboardStats{}
	var err error

	if stats.Products, err = s.productRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if stats.Categories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.Orders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(ctx, model.OrderStatusPending); err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}
	if stats.Customers, err = s.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	if stats.Reviews, err = s.reviewRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	if stats.TopProducts, err = s.productRepo.TopByReviews(ctx, dashboardTopN); err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	if stats.RecentOrders, err = s.orderRepo.Recent(ctx, dashboardTopN); err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	s.cache.SetJSON(ctx, dashboardCacheKey, stats, dashboardCacheTTL)
	return stats, nil
}
