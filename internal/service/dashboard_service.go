package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sinmabazaar/backend/internal/dashboard"
	"github.com/sinmabazaar/backend/internal/repository"
)

// ErrDashboardUnavailable is returned when any of the three snapshot
// fetches fails; no partial dashboard is ever produced.
var ErrDashboardUnavailable = errors.New("failed to load dashboard statistics")

// DashboardService fetches the product, order and order-item snapshots
// and runs the aggregation over them.
type DashboardService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewDashboardService(products repository.ProductRepository, orders repository.OrderRepository) *DashboardService {
	return &DashboardService{products: products, orders: orders}
}

// Report builds the dashboard. Any fetch failure collapses into
// ErrDashboardUnavailable with the cause logged.
func (s *DashboardService) Report(ctx context.Context) (*dashboard.Report, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		slog.Error("Dashboard: failed to fetch products", "err", err)
		return nil, ErrDashboardUnavailable
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		slog.Error("Dashboard: failed to fetch orders", "err", err)
		return nil, ErrDashboardUnavailable
	}
	items, err := s.orders.FindAllItems(ctx)
	if err != nil {
		slog.Error("Dashboard: failed to fetch order items", "err", err)
		return nil, ErrDashboardUnavailable
	}

	report := dashboard.Aggregate(products, orders, items)
	return &report, nil
}
