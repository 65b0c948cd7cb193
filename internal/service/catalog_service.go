package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/repository"
)

// CatalogService serves the product catalog and the admin CRUD on it.
type CatalogService struct {
	products repository.ProductRepository
}

func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns the catalog, optionally filtered to one
// category. An unknown category simply yields an empty list.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	if category != "" {
		return s.products.FindByCategory(ctx, category)
	}
	return s.products.FindAll(ctx)
}

// GetProduct returns the full product detail or repository.ErrNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.ProductDetail, error) {
	return s.products.FindByID(ctx, id)
}

// CreateProduct validates and stores a new product. An empty ID gets a
// generated one. Image values are opaque strings; the storefront sends
// base64 data URLs for uploads and keeps them as-is.
func (s *CatalogService) CreateProduct(ctx context.Context, d *entity.ProductDetail) error {
	if err := validateProduct(d); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	normalizeImageOrder(d)

	if err := s.products.Create(ctx, d); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	slog.Info("Product created", "product_id", d.ID, "category", d.Category)
	return nil
}

// UpdateProduct rewrites the product; sizes and colors are replaced
// wholesale, previously stored images are kept and new ones appended.
func (s *CatalogService) UpdateProduct(ctx context.Context, d *entity.ProductDetail) error {
	if err := validateProduct(d); err != nil {
		return err
	}
	normalizeImageOrder(d)

	if err := s.products.Update(ctx, d); err != nil {
		return err
	}
	slog.Info("Product updated", "product_id", d.ID)
	return nil
}

// DeleteProduct removes the product and, via the schema's cascades,
// its images, sizes and colors. Order items keep the product id but
// lose the snapshot.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Product deleted", "product_id", id)
	return nil
}

func validateProduct(d *entity.ProductDetail) error {
	if d.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if !entity.IsValidCategory(d.Category) {
		return fmt.Errorf("invalid product category %q", d.Category)
	}
	if d.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if d.StockQuantity < 0 {
		return fmt.Errorf("product stock must not be negative")
	}
	return nil
}

// normalizeImageOrder gives newly submitted images a display order
// following their position; images already stored keep theirs.
func normalizeImageOrder(d *entity.ProductDetail) {
	for i := range d.Images {
		d.Images[i].ProductID = d.ID
		if d.Images[i].ID == 0 {
			d.Images[i].DisplayOrder = i
		}
	}
}
