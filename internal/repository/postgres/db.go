package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
)

// InitDB opens the Postgres connection and runs the schema migration.
func InitDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("Database connected and migrated")
	return db, nil
}

func migrateDB(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			stock_quantity INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS product_images (
			id SERIAL PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			image_url TEXT NOT NULL,
			display_order INT NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS product_sizes (
			id SERIAL PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			size TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS product_colors (
			id SERIAL PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			color TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			guest_name TEXT NOT NULL DEFAULT '',
			guest_phone TEXT NOT NULL DEFAULT '',
			guest_address TEXT NOT NULL DEFAULT '',
			guest_state TEXT NOT NULL DEFAULT '',
			guest_notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending',
			total_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id TEXT NOT NULL,
			quantity INT NOT NULL DEFAULT 1,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			size TEXT,
			color TEXT
		);
	`)
	return err
}
