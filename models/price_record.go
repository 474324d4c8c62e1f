package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock status values a supplier can report for a priced offering.
const (
	StockStatusInStock    = "in-stock"
	StockStatusLimited    = "limited"
	StockStatusOutOfStock = "out-of-stock"
)

// ValidStockStatus reports whether s is a known stock status.
func ValidStockStatus(s string) bool {
	switch s {
	case StockStatusInStock, StockStatusLimited, StockStatusOutOfStock:
		return true
	}
	return false
}

// PriceRecord is an append-only ledger entry for a (product, supplier) pair.
// Records are never mutated after creation; a new submission deactivates the
// pair's active record and inserts a fresh one. At most one record per pair
// has IsActive set.
type PriceRecord struct {
	ID                   uuid.UUID `json:"_id" bson:"_id"`
	ProductID            uuid.UUID `json:"product" bson:"product_id"`
	SupplierID           uuid.UUID `json:"supplier" bson:"supplier_id"`
	Price                float64   `json:"price" bson:"price"`
	Currency             string    `json:"currency" bson:"currency"`
	StockStatus          string    `json:"stockStatus" bson:"stock_status"`
	MinimumOrderQuantity int       `json:"minimumOrderQuantity" bson:"minimum_order_quantity"`
	UpdatedBy            uuid.UUID `json:"updatedBy" bson:"updated_by"`
	IsActive             bool      `json:"isActive" bson:"is_active"`
	CreatedAt            time.Time `json:"createdAt" bson:"created_at"`
}

// ResolvedPrice is a PriceRecord enriched with the owning supplier, as
// produced by the resolution pipeline's $lookup stage.
type ResolvedPrice struct {
	PriceRecord  `bson:",inline"`
	SupplierInfo Supplier `json:"supplierInfo" bson:"supplier_info"`
}

// ProductSummary carries the product fields shown next to a supplier's own
// price history.
type ProductSummary struct {
	Name string `json:"name" bson:"name"`
	SKU  string `json:"sku" bson:"sku"`
}

// SupplierPriceEntry is a PriceRecord enriched with its product, for the
// supplier-facing history view.
type SupplierPriceEntry struct {
	PriceRecord `bson:",inline"`
	ProductInfo ProductSummary `json:"productInfo" bson:"product_info"`
}
