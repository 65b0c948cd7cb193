package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository backed by Postgres.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, guest_name, guest_phone, guest_address, guest_state, guest_notes, status, total_price, created_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.UserID, o.GuestName, o.GuestPhone, o.GuestAddress, o.GuestState, o.GuestNotes,
		o.Status, o.TotalPrice, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price, size, color)
			 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))`,
			o.ID, item.ProductID, item.Quantity, item.Price, item.Size, item.Color,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const orderColumns = `id, COALESCE(user_id, ''), guest_name, guest_phone, guest_address, guest_state, guest_notes, status, total_price, created_at`

func scanOrder(row interface{ Scan(...any) error }) (entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.UserID, &o.GuestName, &o.GuestPhone, &o.GuestAddress,
		&o.GuestState, &o.GuestNotes, &o.Status, &o.TotalPrice, &o.CreatedAt)
	return o, err
}

func (r *orderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.findItems(ctx, "WHERE oi.order_id = $1", orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	o.Items, err = r.findItems(ctx, "WHERE oi.order_id = $1", id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) FindAllItems(ctx context.Context) ([]entity.OrderItem, error) {
	return r.findItems(ctx, "")
}

// findItems reads order items with the referenced product joined in as
// it currently exists. The join is a LEFT JOIN so items of deleted
// products survive, with a nil snapshot.
func (r *orderRepository) findItems(ctx context.Context, where string, args ...any) ([]entity.OrderItem, error) {
	query := `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
			COALESCE(oi.size, ''), COALESCE(oi.color, ''),
			p.id, p.name, p.category, p.price, p.stock_quantity
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id ` + where + " ORDER BY oi.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		var (
			pID, pName, pCategory sql.NullString
			pPrice                sql.NullFloat64
			pStock                sql.NullInt64
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&item.Size, &item.Color, &pID, &pName, &pCategory, &pPrice, &pStock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if pID.Valid {
			item.Product = &entity.ProductSnapshot{
				ID:            pID.String,
				Name:          pName.String,
				Category:      pCategory.String,
				Price:         pPrice.Float64,
				StockQuantity: int(pStock.Int64),
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = $2 WHERE id = $1", orderID, status)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
