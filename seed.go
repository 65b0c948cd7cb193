package main

import (
	"github.com/sinmabazaar/backend/internal/entity"
)

// seedCatalog returns the initial catalog inserted on first start.
func seedCatalog() []entity.ProductDetail {
	return []entity.ProductDetail{
		{
			Product: entity.Product{
				ID:            "prod-001",
				Name:          "Embroidered Kaftan Dress",
				Description:   "Hand-embroidered traditional kaftan in breathable cotton.",
				Category:      entity.CategoryWomensClothing,
				Price:         5400,
				StockQuantity: 25,
			},
			Sizes:  []string{"S", "M", "L", "XL"},
			Colors: []string{"Emerald", "Burgundy"},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1518049362265-d5b2a6467637?w=400", DisplayOrder: 0},
			},
		},
		{
			Product: entity.Product{
				ID:            "prod-002",
				Name:          "Summer Maxi Dress",
				Description:   "Lightweight flowing maxi dress for warm days.",
				Category:      entity.CategoryWomensClothing,
				Price:         3200,
				StockQuantity: 40,
			},
			Sizes:  []string{"S", "M", "L"},
			Colors: []string{"Sand", "Navy"},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400", DisplayOrder: 0},
			},
		},
		{
			Product: entity.Product{
				ID:            "prod-003",
				Name:          "Copper Cookware Set",
				Description:   "Five-piece hammered copper cookware set with brass handles.",
				Category:      entity.CategoryKitchenware,
				Price:         12800,
				StockQuantity: 10,
			},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1584990347449-a2d4c2c044c2?w=400", DisplayOrder: 0},
			},
		},
		{
			Product: entity.Product{
				ID:            "prod-004",
				Name:          "Ceramic Tagine Pot",
				Description:   "Glazed ceramic tagine for slow-cooked dishes.",
				Category:      entity.CategoryKitchenware,
				Price:         2600,
				StockQuantity: 35,
			},
			Colors: []string{"Terracotta", "Blue"},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1578861256505-d3be7cb037d3?w=400", DisplayOrder: 0},
			},
		},
		{
			Product: entity.Product{
				ID:            "prod-005",
				Name:          "Silver Filigree Bracelet",
				Description:   "Handmade silver bracelet with traditional filigree work.",
				Category:      entity.CategoryAccessories,
				Price:         4100,
				StockQuantity: 18,
			},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=400", DisplayOrder: 0},
			},
		},
		{
			Product: entity.Product{
				ID:            "prod-006",
				Name:          "Leather Crossbody Bag",
				Description:   "Full-grain leather crossbody bag with adjustable strap.",
				Category:      entity.CategoryAccessories,
				Price:         6900,
				StockQuantity: 22,
			},
			Colors: []string{"Tan", "Black"},
			Images: []entity.ProductImage{
				{ImageURL: "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400", DisplayOrder: 0},
			},
		},
	}
}
