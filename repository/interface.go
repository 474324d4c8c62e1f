package repository

import (
	"context"

	"marketplace-service/models"

	"github.com/google/uuid"
)

// ProductRepo defines the catalog operations used by the services layer.
type ProductRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Search(ctx context.Context, query, category string, limit, skip int) ([]models.Product, error)
	CountSearch(ctx context.Context, query, category string) (int64, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	DistinctCategories(ctx context.Context) ([]string, error)
	EnsureIndexes(ctx context.Context) error
}

// SupplierRepo defines the supplier operations used by the services layer.
type SupplierRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	EnsureIndexes(ctx context.Context) error
}

// PriceRepo defines the price-ledger operations. SubmitActive and
// SubmitActiveWithCatalog are the only writers and both serialize the
// deactivate-then-insert transition per (product, supplier) pair.
type PriceRepo interface {
	// ActiveForProduct returns the active record per supplier for a product,
	// enriched with supplier details, sorted by ascending price.
	ActiveForProduct(ctx context.Context, productID uuid.UUID) ([]models.ResolvedPrice, error)
	// ActiveForPair returns the single active record for a pair, or nil when
	// the supplier has no active price.
	ActiveForPair(ctx context.Context, productID, supplierID uuid.UUID) (*models.PriceRecord, error)
	// HistoryForProduct returns recent records for a product newest first,
	// optionally restricted to one supplier.
	HistoryForProduct(ctx context.Context, productID uuid.UUID, supplierID *uuid.UUID, limit int) ([]models.ResolvedPrice, error)
	// HistoryForSupplier returns a supplier's recent submissions newest first.
	HistoryForSupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]models.SupplierPriceEntry, error)
	// SubmitActive atomically deactivates the pair's active records and
	// inserts rec as the new active one.
	SubmitActive(ctx context.Context, rec *models.PriceRecord) error
	// SubmitActiveWithCatalog additionally establishes the bidirectional
	// supplier/product membership in the same transaction.
	SubmitActiveWithCatalog(ctx context.Context, rec *models.PriceRecord) error
	EnsureIndexes(ctx context.Context) error
}
