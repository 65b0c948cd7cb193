package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/i18n"
	"github.com/sinmabazaar/backend/internal/messaging"
	"github.com/sinmabazaar/backend/internal/session"
)

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		FirstName: "Amina",
		LastName:  "Said",
		Phone:     "0550123456",
		Address:   "12 Rue Didouche",
		State:     "Alger",
		Notes:     "Call before delivery",
	}
}

func newOrderServiceWithCart(t *testing.T, details ...entity.ProductDetail) (*OrderService, *orderRepoStub, *publisherStub, *CartService) {
	t.Helper()
	store := session.NewMemoryStore()
	cart := NewCartService(store, newProductRepoStub(details...))
	orders := &orderRepoStub{}
	pub := &publisherStub{}
	svc := NewOrderService(orders, store, cart, pub)
	svc.now = func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) }
	return svc, orders, pub, cart
}

func fillCart(t *testing.T, cart *CartService, sid string) {
	t.Helper()
	ctx := context.Background()
	_, err := cart.AddLine(ctx, sid, AddToCartRequest{ProductID: "dress-1", Quantity: 2, Size: "M"})
	require.NoError(t, err)
	_, err = cart.AddLine(ctx, sid, AddToCartRequest{ProductID: "pot-1", Quantity: 1})
	require.NoError(t, err)
}

func TestCheckoutRequiredFields(t *testing.T) {
	svc, orders, _, cart := newOrderServiceWithCart(t, dress(), pot())
	fillCart(t, cart, "sid")

	tests := []struct {
		name   string
		mutate func(*CheckoutRequest)
	}{
		{"missing first name", func(r *CheckoutRequest) { r.FirstName = "" }},
		{"missing last name", func(r *CheckoutRequest) { r.LastName = "" }},
		{"missing phone", func(r *CheckoutRequest) { r.Phone = "" }},
		{"missing address", func(r *CheckoutRequest) { r.Address = "" }},
		{"missing state", func(r *CheckoutRequest) { r.State = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckout()
			tt.mutate(&req)

			_, err := svc.Checkout(context.Background(), "sid", req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, i18n.MsgRequiredFields, ve.MsgID)
		})
	}

	// Notes are optional.
	req := validCheckout()
	req.Notes = ""
	_, err := svc.Checkout(context.Background(), "sid", req)
	assert.NoError(t, err)

	assert.Len(t, orders.orders, 1, "validation failures must not reach the store")
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, orders, _, _ := newOrderServiceWithCart(t)

	_, err := svc.Checkout(context.Background(), "sid", validCheckout())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, i18n.MsgCartEmpty, ve.MsgID)
	assert.Empty(t, orders.orders)
}

func TestCheckoutCreatesGuestOrder(t *testing.T) {
	svc, orders, pub, cart := newOrderServiceWithCart(t, dress(), pot())
	ctx := context.Background()
	fillCart(t, cart, "sid")

	order, err := svc.Checkout(ctx, "sid", validCheckout())
	require.NoError(t, err)

	require.Len(t, orders.orders, 1)
	stored := orders.orders[0]
	assert.Equal(t, order.ID, stored.ID)
	assert.True(t, stored.IsGuest())
	assert.Equal(t, "Amina Said", stored.GuestName)
	assert.Equal(t, "0550123456", stored.GuestPhone)
	assert.Equal(t, "Alger", stored.GuestState)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Equal(t, 2*3200.0+2600.0, stored.TotalPrice, "total is the sum of price times quantity")

	require.Len(t, stored.Items, 2)
	assert.Equal(t, "dress-1", stored.Items[0].ProductID)
	assert.Equal(t, "M", stored.Items[0].Size)
	assert.Equal(t, 3200.0, stored.Items[0].Price, "item price is a snapshot of the cart line")

	// Cart is cleared only after the order is written.
	lines, _, err := cart.GetCart(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Event published.
	require.Len(t, pub.topics, 1)
	assert.Equal(t, messaging.TopicOrderPlaced, pub.topics[0])
	assert.Equal(t, order.ID, pub.keys[0])
}

func TestCheckoutStoreFailureKeepsCart(t *testing.T) {
	svc, orders, pub, cart := newOrderServiceWithCart(t, pot())
	ctx := context.Background()
	orders.createErr = errStoreDown

	_, err := cart.AddLine(ctx, "sid", AddToCartRequest{ProductID: "pot-1", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sid", validCheckout())
	require.Error(t, err)

	lines, _, err := cart.GetCart(ctx, "sid")
	require.NoError(t, err)
	assert.Len(t, lines, 1, "failed checkout must not clear the cart")
	assert.Empty(t, pub.topics, "failed checkout must not publish")
}

func TestCheckoutWorksWithoutPublisher(t *testing.T) {
	store := session.NewMemoryStore()
	cart := NewCartService(store, newProductRepoStub(pot()))
	svc := NewOrderService(&orderRepoStub{}, store, cart, nil)

	ctx := context.Background()
	_, err := cart.AddLine(ctx, "sid", AddToCartRequest{ProductID: "pot-1", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sid", validCheckout())
	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	svc, orders, pub, _ := newOrderServiceWithCart(t)
	orders.orders = []entity.Order{{ID: "o1", Status: entity.StatusPending}}
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, "o1", entity.StatusShipped))
	assert.Equal(t, entity.StatusShipped, orders.orders[0].Status)

	require.Len(t, pub.topics, 1)
	assert.Equal(t, messaging.TopicOrderStatusChanged, pub.topics[0])

	// Backwards transitions are allowed.
	require.NoError(t, svc.UpdateStatus(ctx, "o1", entity.StatusPending))
	assert.Equal(t, entity.StatusPending, orders.orders[0].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, orders, pub, _ := newOrderServiceWithCart(t)
	orders.orders = []entity.Order{{ID: "o1", Status: entity.StatusPending}}

	err := svc.UpdateStatus(context.Background(), "o1", "Cancelled")
	require.Error(t, err)
	assert.Equal(t, entity.StatusPending, orders.orders[0].Status)
	assert.Empty(t, pub.topics)
}

func TestTrackOrders(t *testing.T) {
	svc, orders, _, _ := newOrderServiceWithCart(t)
	orders.orders = []entity.Order{
		{ID: "o2", Status: entity.StatusPending},
		{ID: "o1", Status: entity.StatusDelivered},
	}

	got, err := svc.TrackOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
