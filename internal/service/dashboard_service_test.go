package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinmabazaar/backend/internal/entity"
)

func TestDashboardReport(t *testing.T) {
	products := newProductRepoStub(pot())
	orders := &orderRepoStub{orders: []entity.Order{
		{
			ID: "o1", Status: entity.StatusPending, TotalPrice: 100,
			Items: []entity.OrderItem{{
				ProductID: "pot-1", Quantity: 2, Price: 50,
				Product: &entity.ProductSnapshot{ID: "pot-1", Name: "Tagine Pot", Category: entity.CategoryKitchenware, Price: 2600},
			}},
		},
		{ID: "o2", Status: entity.StatusDelivered, TotalPrice: 250.5},
		{ID: "o3", Status: entity.StatusPending, TotalPrice: 0},
	}}

	report, err := NewDashboardService(products, orders).Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Stats.TotalProducts)
	assert.Equal(t, 3, report.Stats.TotalOrders)
	assert.Equal(t, 2, report.Stats.PendingOrders)
	assert.Equal(t, 1, report.Stats.DeliveredOrders)
	assert.Equal(t, 350.5, report.Stats.TotalRevenue)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "pot-1", report.TopProducts[0].ID)
	assert.Equal(t, 2, report.TopProducts[0].TotalOrdered)
}

func TestDashboardReportFailsClosed(t *testing.T) {
	t.Run("products fetch fails", func(t *testing.T) {
		products := newProductRepoStub()
		products.err = errStoreDown
		svc := NewDashboardService(products, &orderRepoStub{})

		report, err := svc.Report(context.Background())
		assert.ErrorIs(t, err, ErrDashboardUnavailable)
		assert.Nil(t, report, "no partial dashboard")
	})

	t.Run("orders fetch fails", func(t *testing.T) {
		svc := NewDashboardService(newProductRepoStub(), &orderRepoStub{findErr: errStoreDown})

		report, err := svc.Report(context.Background())
		assert.ErrorIs(t, err, ErrDashboardUnavailable)
		assert.Nil(t, report)
	})
}
