package services

import (
	"marketplace-service/models"

	"github.com/google/uuid"
)

// PriceInput is a supplier's price submission payload.
type PriceInput struct {
	Price                float64
	Currency             string
	StockStatus          string
	MinimumOrderQuantity int
}

// PriceFilter bounds a resolved price list. Bounds are inclusive; a nil
// field means unbounded.
type PriceFilter struct {
	MinPrice   *float64
	MaxPrice   *float64
	SupplierID *uuid.UUID
}

// Empty reports whether the filter passes everything through.
func (f PriceFilter) Empty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.SupplierID == nil
}

// PriceStats summarizes a resolved price list. All fields are nil when the
// list is empty.
type PriceStats struct {
	Lowest  *models.ResolvedPrice `json:"lowestPrice"`
	Highest *models.ResolvedPrice `json:"highestPrice"`
	Average *float64              `json:"averagePrice"`
}

// Comparison is the buyer-facing cross-supplier view of one product.
type Comparison struct {
	Product *models.Product        `json:"product"`
	Prices  []models.ResolvedPrice `json:"priceComparison"`
	Stats   PriceStats             `json:"-"`
}

// ProductDetail is a product with its resolved supplier prices.
type ProductDetail struct {
	models.Product
	Prices []models.ResolvedPrice `json:"prices"`
}

// ProductWithPrices is one search result item.
type ProductWithPrices struct {
	models.Product
	Prices      []models.ResolvedPrice `json:"prices"`
	LowestPrice *float64               `json:"lowestPrice"`
}

// SearchParams drives SearchAndRank. SortBy "price" ranks by ascending
// lowest resolved price; empty SortBy keeps store order.
type SearchParams struct {
	Query    string
	Category string
	Filter   PriceFilter
	SortBy   string
	Page     int
	PageSize int
}

// SearchResult is a page of search results. Total and TotalPages count the
// catalog matches before price filtering, so a page can carry fewer than
// PageSize items when a price filter is set.
type SearchResult struct {
	Items      []ProductWithPrices `json:"products"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"pages"`
	Total      int64               `json:"total"`
}

// CreateProductInput is the payload for adding a product to the catalog.
type CreateProductInput struct {
	Name           string
	Description    string
	Category       string
	SubCategory    string
	Specifications map[string]string
	Unit           string
	Brand          string
	SKU            string
	Thumbnail      string
}

// SupplierProduct is a product in a supplier's own dashboard, annotated with
// the supplier's current offer for it.
type SupplierProduct struct {
	models.Product
	CurrentPrice *float64   `json:"currentPrice"`
	StockStatus  string     `json:"stockStatus"`
	PriceID      *uuid.UUID `json:"priceId"`
}

// SupplierProfile is a supplier together with the products it supplies.
type SupplierProfile struct {
	models.Supplier
	Products []models.Product `json:"products"`
}
