package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/repository"
)

// productRepoStub is an in-memory ProductRepository for service tests.
type productRepoStub struct {
	products map[string]*entity.ProductDetail
	err      error
}

func newProductRepoStub(details ...entity.ProductDetail) *productRepoStub {
	s := &productRepoStub{products: make(map[string]*entity.ProductDetail)}
	for i := range details {
		d := details[i]
		s.products[d.ID] = &d
	}
	return s
}

func (s *productRepoStub) FindAll(ctx context.Context) ([]entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Product
	for _, d := range s.products {
		out = append(out, d.Product)
	}
	return out, nil
}

func (s *productRepoStub) FindByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Product
	for _, d := range s.products {
		if d.Category == category {
			out = append(out, d.Product)
		}
	}
	return out, nil
}

func (s *productRepoStub) FindByID(ctx context.Context, id string) (*entity.ProductDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	d, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (s *productRepoStub) Create(ctx context.Context, d *entity.ProductDetail) error {
	if s.err != nil {
		return s.err
	}
	if _, exists := s.products[d.ID]; exists {
		return fmt.Errorf("duplicate product id %s", d.ID)
	}
	s.products[d.ID] = d
	return nil
}

func (s *productRepoStub) Update(ctx context.Context, d *entity.ProductDetail) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[d.ID]; !ok {
		return repository.ErrNotFound
	}
	s.products[d.ID] = d
	return nil
}

func (s *productRepoStub) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *productRepoStub) Seed(ctx context.Context, products []entity.ProductDetail) error {
	return nil
}

// orderRepoStub is an in-memory OrderRepository for service tests.
type orderRepoStub struct {
	orders    []entity.Order
	createErr error
	findErr   error
}

func (s *orderRepoStub) Create(ctx context.Context, o *entity.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *orderRepoStub) FindAll(ctx context.Context) ([]entity.Order, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.orders, nil
}

func (s *orderRepoStub) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *orderRepoStub) FindAllItems(ctx context.Context) ([]entity.OrderItem, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var items []entity.OrderItem
	for _, o := range s.orders {
		items = append(items, o.Items...)
	}
	return items, nil
}

func (s *orderRepoStub) UpdateStatus(ctx context.Context, orderID, status string) error {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

// publisherStub records published events.
type publisherStub struct {
	topics []string
	keys   []string
	events []any
	err    error
}

func (p *publisherStub) PublishEvent(ctx context.Context, topic, key string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

var errStoreDown = errors.New("store unreachable")
