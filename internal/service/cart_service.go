package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/i18n"
	"github.com/sinmabazaar/backend/internal/repository"
	"github.com/sinmabazaar/backend/internal/session"
)

// CartService maintains the session cart and wishlist. Every mutation
// reads the stored collection, applies a pure transformation and writes
// the whole result back before reporting success, so an interrupted
// mutation leaves the previous state intact.
type CartService struct {
	sessions session.Store
	products repository.ProductRepository
}

func NewCartService(sessions session.Store, products repository.ProductRepository) *CartService {
	return &CartService{sessions: sessions, products: products}
}

// AddToCartRequest describes one add-to-cart action.
type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// GetCart returns the stored cart lines and their fresh total.
func (s *CartService) GetCart(ctx context.Context, sessionID string) ([]entity.CartLine, float64, error) {
	lines, err := s.readCart(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return lines, entity.CartTotal(lines), nil
}

// AddLine resolves the product, validates the request and merges the
// new line into the session cart. Name, price and image always come
// from the store, never from the client.
func (s *CartService) AddLine(ctx context.Context, sessionID string, req AddToCartRequest) ([]entity.CartLine, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, validation(i18n.MsgProductNotFound)
	}
	if err != nil {
		return nil, err
	}
	if product.Category == entity.CategoryWomensClothing && req.Size == "" {
		return nil, validation(i18n.MsgSizeRequired)
	}

	lines, err := s.readCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated := entity.AddLine(lines, entity.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		ImageURL:  product.PrimaryImageURL(),
	})
	if err := s.writeCart(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// AdjustQuantity changes a line's quantity by delta; a line driven to
// zero disappears. Unknown keys are a no-op.
func (s *CartService) AdjustQuantity(ctx context.Context, sessionID string, key entity.LineKey, delta int) ([]entity.CartLine, error) {
	lines, err := s.readCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updated := entity.AdjustQuantity(lines, key, delta)
	if err := s.writeCart(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveLine drops the line matching key.
func (s *CartService) RemoveLine(ctx context.Context, sessionID string, key entity.LineKey) ([]entity.CartLine, error) {
	lines, err := s.readCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updated := entity.RemoveLine(lines, key)
	if err := s.writeCart(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetWishlist returns the stored product id list.
func (s *CartService) GetWishlist(ctx context.Context, sessionID string) ([]string, error) {
	return s.readWishlist(ctx, sessionID)
}

// GetWishlistProducts resolves the wishlist against the catalog.
// Products that no longer exist are skipped.
func (s *CartService) GetWishlistProducts(ctx context.Context, sessionID string) ([]entity.Product, error) {
	ids, err := s.readWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		detail, err := s.products.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, detail.Product)
	}
	return products, nil
}

// ToggleWishlist flips the product's wishlist membership and returns
// the new membership state.
func (s *CartService) ToggleWishlist(ctx context.Context, sessionID, productID string) (bool, error) {
	ids, err := s.readWishlist(ctx, sessionID)
	if err != nil {
		return false, err
	}

	updated, member := entity.ToggleWishlist(ids, productID)
	payload, err := json.Marshal(updated)
	if err != nil {
		return false, fmt.Errorf("failed to marshal wishlist: %w", err)
	}
	if err := s.sessions.Set(ctx, sessionID, session.KeyWishlist, string(payload)); err != nil {
		return false, err
	}
	return member, nil
}

func (s *CartService) readCart(ctx context.Context, sessionID string) ([]entity.CartLine, error) {
	raw, ok, err := s.sessions.Get(ctx, sessionID, session.KeyCart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var lines []entity.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// A corrupt value cannot be merged into; start over.
		slog.Warn("Discarding unreadable cart value", "session_id", sessionID, "err", err)
		return nil, nil
	}
	return lines, nil
}

func (s *CartService) writeCart(ctx context.Context, sessionID string, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return s.sessions.Set(ctx, sessionID, session.KeyCart, string(payload))
}

func (s *CartService) readWishlist(ctx context.Context, sessionID string) ([]string, error) {
	raw, ok, err := s.sessions.Get(ctx, sessionID, session.KeyWishlist)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("Discarding unreadable wishlist value", "session_id", sessionID, "err", err)
		return nil, nil
	}
	return ids, nil
}
