package repository

import (
	"context"
	"errors"

	"github.com/sinmabazaar/backend/internal/entity"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ProductRepository handles persistence for products and their images,
// sizes and colors.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByCategory(ctx context.Context, category string) ([]entity.Product, error)
	// FindByID returns the product with its images (ordered by display
	// order), sizes and colors, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*entity.ProductDetail, error)
	Create(ctx context.Context, d *entity.ProductDetail) error
	// Update rewrites the product row, replaces its sizes and colors
	// wholesale and appends any new images.
	Update(ctx context.Context, d *entity.ProductDetail) error
	Delete(ctx context.Context, id string) error
	// Seed inserts initial products if the catalog is empty.
	Seed(ctx context.Context, products []entity.ProductDetail) error
}

// OrderRepository handles persistence for orders and their items.
type OrderRepository interface {
	// Create inserts the order and all of its items in one transaction.
	Create(ctx context.Context, o *entity.Order) error
	// FindAll returns every order newest-first, items included, each
	// item carrying the current product snapshot.
	FindAll(ctx context.Context) ([]entity.Order, error)
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	// FindAllItems returns every order item across all orders with the
	// product embedded as of the query; items whose product was deleted
	// come back with a nil snapshot.
	FindAllItems(ctx context.Context) ([]entity.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}
