package services

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/errs"
	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultCurrency = "USD"

// PricingService is the price-resolution engine: it derives the current
// price per supplier for a product and owns the append-only write path.
type PricingService struct {
	products  repository.ProductRepo
	suppliers repository.SupplierRepo
	prices    repository.PriceRepo
}

func NewPricingService(pr repository.ProductRepo, sr repository.SupplierRepo, prr repository.PriceRepo) *PricingService {
	return &PricingService{
		products:  pr,
		suppliers: sr,
		prices:    prr,
	}
}

// ResolveCurrentPrices returns the active price record per supplier for a
// product, enriched with supplier details and sorted ascending by price.
// A product with no active records resolves to an empty list, not an error.
func (s *PricingService) ResolveCurrentPrices(ctx context.Context, productID uuid.UUID) ([]models.ResolvedPrice, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, mapLookupErr(err, "Product not found")
	}

	prices, err := s.prices.ActiveForProduct(ctx, productID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	sortByPrice(prices)
	return prices, nil
}

// ComparePrices resolves a product's prices and aggregates cross-supplier
// statistics for the buyer comparison view.
func (s *PricingService) ComparePrices(ctx context.Context, productID uuid.UUID) (*Comparison, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, mapLookupErr(err, "Product not found")
	}

	prices, err := s.prices.ActiveForProduct(ctx, productID)
	if err != nil {
		return nil, errs.Internal(err)
	}
	sortByPrice(prices)

	return &Comparison{
		Product: product,
		Prices:  prices,
		Stats:   AggregateStatistics(prices),
	}, nil
}

// SubmitPrice records a new active price for a (product, supplier) pair.
// The supplier must already supply the product; the pair's previous active
// record is deactivated in the same transaction as the insert.
func (s *PricingService) SubmitPrice(ctx context.Context, productID, supplierID uuid.UUID, input PriceInput, submitterID uuid.UUID) (*models.PriceRecord, error) {
	rec, err := s.buildRecord(ctx, productID, supplierID, input, submitterID, true)
	if err != nil {
		return nil, err
	}

	if err := s.prices.SubmitActive(ctx, rec); err != nil {
		return nil, errs.Internal(err)
	}
	return rec, nil
}

// AddProductToCatalog establishes the supplier/product relationship on both
// sides and records the initial price, all in one transaction.
func (s *PricingService) AddProductToCatalog(ctx context.Context, productID, supplierID uuid.UUID, input PriceInput, submitterID uuid.UUID) (*models.PriceRecord, error) {
	rec, err := s.buildRecord(ctx, productID, supplierID, input, submitterID, false)
	if err != nil {
		return nil, err
	}

	if err := s.prices.SubmitActiveWithCatalog(ctx, rec); err != nil {
		return nil, errs.Internal(err)
	}
	return rec, nil
}

// buildRecord validates the submission and shapes the new ledger entry.
func (s *PricingService) buildRecord(ctx context.Context, productID, supplierID uuid.UUID, input PriceInput, submitterID uuid.UUID, requireSupplied bool) (*models.PriceRecord, error) {
	if input.Price < 0 {
		return nil, errs.Validation("Price must be non-negative")
	}
	if input.MinimumOrderQuantity == 0 {
		input.MinimumOrderQuantity = 1
	}
	if input.MinimumOrderQuantity < 1 {
		return nil, errs.Validation("Minimum order quantity must be at least 1")
	}
	if input.StockStatus == "" {
		input.StockStatus = models.StockStatusInStock
	}
	if !models.ValidStockStatus(input.StockStatus) {
		return nil, errs.Validation(fmt.Sprintf("Invalid stock status %q", input.StockStatus))
	}
	if input.Currency == "" {
		input.Currency = defaultCurrency
	}

	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, mapLookupErr(err, "Supplier not found")
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, mapLookupErr(err, "Product not found")
	}

	if requireSupplied && !containsID(supplier.ProductsSupplied, productID) {
		return nil, errs.Forbidden("You do not supply this product")
	}

	return &models.PriceRecord{
		ID:                   uuid.New(),
		ProductID:            productID,
		SupplierID:           supplierID,
		Price:                input.Price,
		Currency:             input.Currency,
		StockStatus:          input.StockStatus,
		MinimumOrderQuantity: input.MinimumOrderQuantity,
		UpdatedBy:            submitterID,
		IsActive:             true,
		CreatedAt:            time.Now().UTC(),
	}, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// mapLookupErr converts a store miss into a NotFound application error.
func mapLookupErr(err error, message string) error {
	if err == mongo.ErrNoDocuments {
		return errs.NotFound(message)
	}
	return errs.Internal(err)
}
