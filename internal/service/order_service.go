package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/i18n"
	"github.com/sinmabazaar/backend/internal/messaging"
	"github.com/sinmabazaar/backend/internal/repository"
	"github.com/sinmabazaar/backend/internal/session"
)

// OrderService handles guest checkout, order tracking and the admin
// status updates.
type OrderService struct {
	orders    repository.OrderRepository
	sessions  session.Store
	cart      *CartService
	publisher messaging.Publisher // nil when no broker is configured
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, sessions session.Store, cart *CartService, publisher messaging.Publisher) *OrderService {
	return &OrderService{
		orders:    orders,
		sessions:  sessions,
		cart:      cart,
		publisher: publisher,
		now:       time.Now,
	}
}

// CheckoutRequest carries the guest contact form. Phone doubles as the
// guest's contact identity; there is no email field.
type CheckoutRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	State     string `json:"state"`
	Notes     string `json:"notes"`
}

// Checkout validates the form and the session cart, then creates a
// Pending guest order whose total is the sum of line price times
// quantity. Validation failures never reach the store. The cart is
// cleared only after the order is durably written.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*entity.Order, error) {
	if req.FirstName == "" || req.LastName == "" || req.Phone == "" || req.Address == "" || req.State == "" {
		return nil, validation(i18n.MsgRequiredFields)
	}

	lines, err := s.cart.readCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, validation(i18n.MsgCartEmpty)
	}

	order := &entity.Order{
		ID:           uuid.New().String(),
		GuestName:    req.FirstName + " " + req.LastName,
		GuestPhone:   req.Phone,
		GuestAddress: req.Address,
		GuestState:   req.State,
		GuestNotes:   req.Notes,
		Status:       entity.StatusPending,
		TotalPrice:   entity.CartTotal(lines),
		CreatedAt:    s.now(),
	}
	for _, l := range lines {
		order.Items = append(order.Items, entity.OrderItem{
			OrderID:   order.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
			Size:      l.Size,
			Color:     l.Color,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	slog.Info("Order placed", "order_id", order.ID, "total", order.TotalPrice, "items", len(order.Items))

	if err := s.sessions.Delete(ctx, sessionID, session.KeyCart); err != nil {
		// The order stands; the stale cart will be overwritten on the
		// next mutation.
		slog.Warn("Failed to clear cart after checkout", "session_id", sessionID, "err", err)
	}

	s.publish(ctx, messaging.TopicOrderPlaced, order.ID, entity.OrderPlaced{
		OrderID:    order.ID,
		Items:      order.Items,
		TotalPrice: order.TotalPrice,
		PlacedAt:   order.CreatedAt,
	})

	return order, nil
}

// TrackOrders returns every order newest-first with items and the
// current product snapshots.
func (s *OrderService) TrackOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orders.FindAll(ctx)
}

// GetOrder returns one order with its items, or repository.ErrNotFound.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// UpdateStatus sets an order to any of the five known statuses; the
// progression is not enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !entity.IsValidStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	slog.Info("Order status updated", "order_id", orderID, "status", status)

	s.publish(ctx, messaging.TopicOrderStatusChanged, orderID, entity.OrderStatusChanged{
		OrderID:   orderID,
		Status:    status,
		ChangedAt: s.now(),
	})
	return nil
}

// publish sends the event if a broker is wired. Publish failures are
// logged and never fail the user action.
func (s *OrderService) publish(ctx context.Context, topic, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, topic, key, event); err != nil {
		slog.Error("Failed to publish event", "topic", topic, "key", key, "err", err)
	}
}
