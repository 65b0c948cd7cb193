package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinmabazaar/backend/internal/entity"
	"github.com/sinmabazaar/backend/internal/repository"
)

func TestCreateProductAssignsID(t *testing.T) {
	repo := newProductRepoStub()
	svc := NewCatalogService(repo)

	detail := entity.ProductDetail{
		Product: entity.Product{Name: "Teapot", Category: entity.CategoryKitchenware, Price: 900, StockQuantity: 5},
		Images: []entity.ProductImage{
			{ImageURL: "data:image/png;base64,iVBORw0KGgo="},
			{ImageURL: "https://example.com/teapot.jpg"},
		},
	}
	require.NoError(t, svc.CreateProduct(context.Background(), &detail))

	assert.NotEmpty(t, detail.ID)
	stored, err := repo.FindByID(context.Background(), detail.ID)
	require.NoError(t, err)
	assert.Equal(t, "Teapot", stored.Name)
	// Submitted images get sequential display order.
	assert.Equal(t, 0, stored.Images[0].DisplayOrder)
	assert.Equal(t, 1, stored.Images[1].DisplayOrder)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newProductRepoStub())
	ctx := context.Background()

	tests := []struct {
		name   string
		detail entity.ProductDetail
	}{
		{"missing name", entity.ProductDetail{Product: entity.Product{Category: entity.CategoryKitchenware}}},
		{"unknown category", entity.ProductDetail{Product: entity.Product{Name: "X", Category: "Electronics"}}},
		{"negative price", entity.ProductDetail{Product: entity.Product{Name: "X", Category: entity.CategoryAccessories, Price: -1}}},
		{"negative stock", entity.ProductDetail{Product: entity.Product{Name: "X", Category: entity.CategoryAccessories, StockQuantity: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, svc.CreateProduct(ctx, &tt.detail))
		})
	}
}

func TestUpdateProductUnknownID(t *testing.T) {
	svc := NewCatalogService(newProductRepoStub())

	detail := entity.ProductDetail{
		Product: entity.Product{ID: "ghost", Name: "X", Category: entity.CategoryAccessories},
	}
	err := svc.UpdateProduct(context.Background(), &detail)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newProductRepoStub(pot())
	svc := NewCatalogService(repo)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, "pot-1"))
	_, err := repo.FindByID(ctx, "pot-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, "pot-1"), repository.ErrNotFound)
}

func TestListProductsByCategory(t *testing.T) {
	svc := NewCatalogService(newProductRepoStub(dress(), pot()))
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	kitchen, err := svc.ListProducts(ctx, entity.CategoryKitchenware)
	require.NoError(t, err)
	require.Len(t, kitchen, 1)
	assert.Equal(t, "pot-1", kitchen[0].ID)

	none, err := svc.ListProducts(ctx, "No Such Category")
	require.NoError(t, err)
	assert.Empty(t, none)
}
