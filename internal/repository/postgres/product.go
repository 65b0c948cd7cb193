package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository backed by Postgres.
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = "id, name, description, category, price, stock_quantity"

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE category = $1 ORDER BY created_at DESC", category)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]entity.Product, error) {
	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.StockQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.ProductDetail, error) {
	var d entity.ProductDetail
	err := r.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id).
		Scan(&d.ID, &d.Name, &d.Description, &d.Category, &d.Price, &d.StockQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	imgRows, err := r.db.QueryContext(ctx,
		"SELECT id, product_id, image_url, display_order FROM product_images WHERE product_id = $1 ORDER BY display_order", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product images: %w", err)
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img entity.ProductImage
		if err := imgRows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		d.Images = append(d.Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return nil, err
	}

	if d.Sizes, err = r.queryStrings(ctx,
		"SELECT size FROM product_sizes WHERE product_id = $1 ORDER BY id", id); err != nil {
		return nil, fmt.Errorf("failed to query product sizes: %w", err)
	}
	if d.Colors, err = r.queryStrings(ctx,
		"SELECT color FROM product_colors WHERE product_id = $1 ORDER BY id", id); err != nil {
		return nil, fmt.Errorf("failed to query product colors: %w", err)
	}

	return &d, nil
}

func (r *productRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *productRepository) Create(ctx context.Context, d *entity.ProductDetail) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO products (id, name, description, category, price, stock_quantity) VALUES ($1, $2, $3, $4, $5, $6)",
		d.ID, d.Name, d.Description, d.Category, d.Price, d.StockQuantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertVariants(ctx, tx, d); err != nil {
		return err
	}
	if err := insertImages(ctx, tx, d.ID, d.Images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, d *entity.ProductDetail) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE products SET name = $2, description = $3, category = $4, price = $5, stock_quantity = $6 WHERE id = $1",
		d.ID, d.Name, d.Description, d.Category, d.Price, d.StockQuantity,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}

	// Sizes and colors are rewritten wholesale on every edit.
	if _, err := tx.ExecContext(ctx, "DELETE FROM product_sizes WHERE product_id = $1", d.ID); err != nil {
		return fmt.Errorf("failed to delete product sizes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM product_colors WHERE product_id = $1", d.ID); err != nil {
		return fmt.Errorf("failed to delete product colors: %w", err)
	}
	if err := insertVariants(ctx, tx, d); err != nil {
		return err
	}

	// Images are append-only here; existing rows keep their order.
	var newImages []entity.ProductImage
	for _, img := range d.Images {
		if img.ID == 0 {
			newImages = append(newImages, img)
		}
	}
	if err := insertImages(ctx, tx, d.ID, newImages); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertVariants(ctx context.Context, tx *sql.Tx, d *entity.ProductDetail) error {
	for _, size := range d.Sizes {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO product_sizes (product_id, size) VALUES ($1, $2)", d.ID, size); err != nil {
			return fmt.Errorf("failed to insert product size: %w", err)
		}
	}
	for _, color := range d.Colors {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO product_colors (product_id, color) VALUES ($1, $2)", d.ID, color); err != nil {
			return fmt.Errorf("failed to insert product color: %w", err)
		}
	}
	return nil
}

func insertImages(ctx context.Context, tx *sql.Tx, productID string, images []entity.ProductImage) error {
	for _, img := range images {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO product_images (product_id, image_url, display_order) VALUES ($1, $2, $3)",
			productID, img.ImageURL, img.DisplayOrder); err != nil {
			return fmt.Errorf("failed to insert product image: %w", err)
		}
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *productRepository) Seed(ctx context.Context, products []entity.ProductDetail) error {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ID, err)
		}
	}
	return nil
}
