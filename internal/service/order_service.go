package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// OrderService exposes orders to the back office: read and status update
// only. Order creation belongs to the storefront.
type OrderService interface {
	List(ctx context.Context, filter repository.ListFilter) ([]model.Order, int64, error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) List(ctx context.Context, filter repository.ListFilter) ([]model.Order, int64, error) {
	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		applySnapshotFallback(&orders[i])
	}
	return orders, total, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	applySnapshotFallback(order)
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	if !model.ValidOrderStatus(status) {
		return apperrors.ErrInvalidStatus
	}
	affected, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// applySnapshotFallback fills the customer snapshot from the joined user
// for legacy rows created before the snapshot columns existed. Rows with
// a snapshot keep it even if the user record has since changed.
func applySnapshotFallback(order *model.Order) {
	if order.User == nil {
		return
	}
	if order.CustomerName == "" {
		order.CustomerName = order.User.Name
	}
	if order.CustomerMobile == "" {
		order.CustomerMobile = order.User.Mobile
	}
	if order.CustomerAddress == "" {
		order.CustomerAddress = defaultAddress(order.User.Addresses)
	}
}

// defaultAddress flattens the customer's default saved address, or the
// first one when none is marked default, into a single display line.
func defaultAddress(addresses []model.Address) string {
	if len(addresses) == 0 {
		return ""
	}
	addr := addresses[0]
	for _, a := range addresses {
		if a.IsDefault {
			addr = a
			break
		}
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{addr.Line1, addr.Line2, addr.City, addr.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
