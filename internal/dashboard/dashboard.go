// Package dashboard computes the admin dashboard statistics from flat
// snapshots of products, orders and order items. The computation is
// pure: it never touches the store and cannot fail on well-typed input.
package dashboard

import (
	"sort"

	"github.com/sinmabazaar/backend/internal/entity"
)

// TopProductsLimit caps the top-products ranking.
const TopProductsLimit = 10

// Stats holds the global counters. The five status counters are always
// present; a status missing from the order set counts as zero.
type Stats struct {
	TotalProducts       int     `json:"total_products"`
	TotalOrders         int     `json:"total_orders"`
	PendingOrders       int     `json:"pending_orders"`
	ConfirmedOrders     int     `json:"confirmed_orders"`
	PreparingOrders     int     `json:"preparing_orders"`
	ShippedOrders       int     `json:"shipped_orders"`
	DeliveredOrders     int     `json:"delivered_orders"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
}

// CategoryStats is the per-category rollup. Categories without any
// product do not appear in the output.
type CategoryStats struct {
	Category        string  `json:"category"`
	ProductCount    int     `json:"product_count"`
	TotalStock      int     `json:"total_stock"`
	TotalValue      float64 `json:"total_value"`
	OrdersCount     int     `json:"orders_count"`
	OrderedQuantity int     `json:"ordered_quantity"`
	Revenue         float64 `json:"revenue"`
}

// TopProduct is one entry of the ranking by total ordered quantity.
// Name, category, price and stock come from the embedded product data
// of the most recently seen order item for that product.
type TopProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	TotalOrdered  int     `json:"total_ordered"`
	Revenue       float64 `json:"revenue"`
}

// Report is the full dashboard payload.
type Report struct {
	Stats       Stats           `json:"stats"`
	Categories  []CategoryStats `json:"categories"`
	TopProducts []TopProduct    `json:"top_products"`
}

// Aggregate computes the dashboard report from already-fetched records.
// Order items carry the product embedded as of the query; items whose
// product category matches no category seen among products are dropped
// from the rollups, and orders with an unknown status count toward the
// order total but no status bucket.
func Aggregate(products []entity.Product, orders []entity.Order, items []entity.OrderItem) Report {
	var stats Stats
	stats.TotalProducts = len(products)
	stats.TotalOrders = len(orders)

	for _, o := range orders {
		switch o.Status {
		case entity.StatusPending:
			stats.PendingOrders++
		case entity.StatusConfirmed:
			stats.ConfirmedOrders++
		case entity.StatusPreparing:
			stats.PreparingOrders++
		case entity.StatusShipped:
			stats.ShippedOrders++
		case entity.StatusDelivered:
			stats.DeliveredOrders++
		}
		stats.TotalRevenue += o.TotalPrice
	}

	for _, p := range products {
		stats.TotalInventoryValue += float64(p.StockQuantity) * p.Price
	}

	return Report{
		Stats:       stats,
		Categories:  categoryRollup(products, items),
		TopProducts: topProducts(items),
	}
}

func categoryRollup(products []entity.Product, items []entity.OrderItem) []CategoryStats {
	byCategory := make(map[string]*CategoryStats)
	var order []string

	for _, p := range products {
		cs, ok := byCategory[p.Category]
		if !ok {
			cs = &CategoryStats{Category: p.Category}
			byCategory[p.Category] = cs
			order = append(order, p.Category)
		}
		cs.ProductCount++
		cs.TotalStock += p.StockQuantity
		cs.TotalValue += float64(p.StockQuantity) * p.Price
	}

	for _, item := range items {
		if item.Product == nil {
			continue
		}
		cs, ok := byCategory[item.Product.Category]
		if !ok {
			// No product with this category exists anymore; drop the item.
			continue
		}
		cs.OrdersCount++
		cs.OrderedQuantity += item.Quantity
		cs.Revenue += float64(item.Quantity) * item.Price
	}

	out := make([]CategoryStats, 0, len(order))
	for _, cat := range order {
		out = append(out, *byCategory[cat])
	}
	return out
}

func topProducts(items []entity.OrderItem) []TopProduct {
	byProduct := make(map[string]*TopProduct)
	var order []string

	for _, item := range items {
		tp, ok := byProduct[item.ProductID]
		if !ok {
			tp = &TopProduct{ID: item.ProductID}
			byProduct[item.ProductID] = tp
			order = append(order, item.ProductID)
		}
		if item.Product != nil {
			tp.Name = item.Product.Name
			tp.Category = item.Product.Category
			tp.Price = item.Product.Price
			tp.StockQuantity = item.Product.StockQuantity
		}
		tp.TotalOrdered += item.Quantity
		tp.Revenue += float64(item.Quantity) * item.Price
	}

	ranked := make([]TopProduct, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *byProduct[id])
	}
	// Stable sort keeps first-encountered order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalOrdered > ranked[j].TotalOrdered
	})
	if len(ranked) > TopProductsLimit {
		ranked = ranked[:TopProductsLimit]
	}
	return ranked
}
