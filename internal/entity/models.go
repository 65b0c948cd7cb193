package entity

import (
	"time"
)

// Product categories carried by the catalog. The set is fixed; display
// metadata is resolved by exact match, never by substring.
const (
	CategoryWomensClothing = "Women's Clothing"
	CategoryKitchenware    = "Kitchenware"
	CategoryAccessories    = "Accessories"
)

// Categories lists every valid product category.
var Categories = []string{
	CategoryWomensClothing,
	CategoryKitchenware,
	CategoryAccessories,
}

// IsValidCategory reports whether category is one of the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CategoryDisplay holds the UI metadata for a category.
type CategoryDisplay struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryDisplay = map[string]CategoryDisplay{
	CategoryWomensClothing: {Icon: "shirt", Color: "pink"},
	CategoryKitchenware:    {Icon: "utensils", Color: "orange"},
	CategoryAccessories:    {Icon: "watch", Color: "purple"},
}

// DisplayForCategory returns the display metadata for a category.
// Unknown categories get a neutral fallback.
func DisplayForCategory(category string) CategoryDisplay {
	if d, ok := categoryDisplay[category]; ok {
		return d
	}
	return CategoryDisplay{Icon: "package", Color: "gray"}
}

// Order statuses in their natural progression. Transitions are not
// restricted; an admin may set any status at any time.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusPreparing = "Preparing"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// OrderStatuses lists the five statuses in progression order.
var OrderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusShipped,
	StatusDelivered,
}

// IsValidStatus reports whether status is one of the five known values.
func IsValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Product represents a product in the store.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// ProductImage is one image of a product. The image with the lowest
// display order is the primary one.
type ProductImage struct {
	ID           int64  `json:"id"`
	ProductID    string `json:"product_id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

// ProductDetail is a product together with its images (ordered by
// display order), sizes and colors.
type ProductDetail struct {
	Product
	Images []ProductImage `json:"images"`
	Sizes  []string       `json:"sizes"`
	Colors []string       `json:"colors"`
}

// PrimaryImageURL returns the URL of the first image, or "" if the
// product has no images.
func (d *ProductDetail) PrimaryImageURL() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0].ImageURL
}

// ProductSnapshot is the product data embedded into an order item when
// it is read back, reflecting the product as of the query, not as of
// the order.
type ProductSnapshot struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
}

// OrderItem is a line item within an order. Price is a snapshot taken
// at order time and never changes afterwards, independent of the
// product's current price.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`

	// Product is filled on reads that join the products table. Nil when
	// the referenced product no longer exists.
	Product *ProductSnapshot `json:"product,omitempty"`
}

// Order represents a customer order. UserID is empty for guest orders;
// guest contact fields are captured inline on the record.
type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id,omitempty"`
	GuestName    string      `json:"guest_name,omitempty"`
	GuestPhone   string      `json:"guest_phone,omitempty"`
	GuestAddress string      `json:"guest_address,omitempty"`
	GuestState   string      `json:"guest_state,omitempty"`
	GuestNotes   string      `json:"guest_notes,omitempty"`
	Status       string      `json:"status"`
	TotalPrice   float64     `json:"total_price"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items,omitempty"`
}

// IsGuest reports whether the order was placed without an account.
func (o *Order) IsGuest() bool { return o.UserID == "" }

// --- Events ---

// OrderPlaced is emitted after a guest checkout is persisted.
type OrderPlaced struct {
	OrderID    string      `json:"order_id"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"total_price"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// OrderStatusChanged is emitted when an admin updates an order status.
type OrderStatusChanged struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
