package controllers

import (
	"context"

	"marketplace-service/models"
	"marketplace-service/services"

	"github.com/google/uuid"
)

// PricingAPI is the slice of the pricing engine the controllers consume.
type PricingAPI interface {
	ComparePrices(ctx context.Context, productID uuid.UUID) (*services.Comparison, error)
	SubmitPrice(ctx context.Context, productID, supplierID uuid.UUID, input services.PriceInput, submitterID uuid.UUID) (*models.PriceRecord, error)
	AddProductToCatalog(ctx context.Context, productID, supplierID uuid.UUID, input services.PriceInput, submitterID uuid.UUID) (*models.PriceRecord, error)
}

// SearchAPI exposes ranked catalog search.
type SearchAPI interface {
	SearchAndRank(ctx context.Context, params services.SearchParams) (*services.SearchResult, error)
}

// CatalogAPI exposes the public product catalog.
type CatalogAPI interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*services.ProductDetail, error)
	PriceHistory(ctx context.Context, productID uuid.UUID, supplierID *uuid.UUID) ([]models.ResolvedPrice, error)
	Categories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, input services.CreateProductInput) (*models.Product, error)
}

// SupplierAPI exposes the supplier dashboard.
type SupplierAPI interface {
	Profile(ctx context.Context, supplierID uuid.UUID) (*services.SupplierProfile, error)
	Products(ctx context.Context, supplierID uuid.UUID) ([]services.SupplierProduct, error)
	History(ctx context.Context, supplierID uuid.UUID) ([]models.SupplierPriceEntry, error)
}

// SubmitPriceRequest is the JSON payload for price submissions.
type SubmitPriceRequest struct {
	Price                float64 `json:"price" validate:"gte=0"`
	Currency             string  `json:"currency"`
	StockStatus          string  `json:"stockStatus" validate:"omitempty,oneof=in-stock limited out-of-stock"`
	MinimumOrderQuantity int     `json:"minimumOrderQuantity" validate:"omitempty,gte=1"`
}

// CreateProductRequest is the JSON payload for adding a catalog product.
type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description" validate:"required"`
	Category       string            `json:"category" validate:"required"`
	SubCategory    string            `json:"subCategory"`
	Specifications map[string]string `json:"specifications"`
	Unit           string            `json:"unit"`
	Brand          string            `json:"brand"`
	SKU            string            `json:"sku" validate:"required"`
	Thumbnail      string            `json:"thumbnail"`
}
