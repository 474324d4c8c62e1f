package services

import (
	"context"

	"marketplace-service/errs"
	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
)

const supplierHistoryLimit = 100

// SupplierService serves the supplier dashboard: profile, supplied products
// with the supplier's own current offer, and submission history.
type SupplierService struct {
	suppliers repository.SupplierRepo
	products  repository.ProductRepo
	prices    repository.PriceRepo
}

func NewSupplierService(sr repository.SupplierRepo, pr repository.ProductRepo, prr repository.PriceRepo) *SupplierService {
	return &SupplierService{
		suppliers: sr,
		products:  pr,
		prices:    prr,
	}
}

// Profile returns the supplier and the products it supplies.
func (s *SupplierService) Profile(ctx context.Context, supplierID uuid.UUID) (*SupplierProfile, error) {
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, mapLookupErr(err, "Supplier profile not found")
	}

	products, err := s.products.FindByIDs(ctx, supplier.ProductsSupplied)
	if err != nil {
		return nil, errs.Internal(err)
	}
	if products == nil {
		products = []models.Product{}
	}

	return &SupplierProfile{Supplier: *supplier, Products: products}, nil
}

// Products returns the supplier's catalog annotated with its current price
// per product. A product without an active record shows a nil price and
// out-of-stock status.
func (s *SupplierService) Products(ctx context.Context, supplierID uuid.UUID) ([]SupplierProduct, error) {
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, mapLookupErr(err, "Supplier not found")
	}

	products, err := s.products.FindByIDs(ctx, supplier.ProductsSupplied)
	if err != nil {
		return nil, errs.Internal(err)
	}

	result := make([]SupplierProduct, 0, len(products))
	for _, product := range products {
		current, err := s.prices.ActiveForPair(ctx, product.ID, supplierID)
		if err != nil {
			return nil, errs.Internal(err)
		}

		item := SupplierProduct{
			Product:     product,
			StockStatus: models.StockStatusOutOfStock,
		}
		if current != nil {
			price := current.Price
			id := current.ID
			item.CurrentPrice = &price
			item.StockStatus = current.StockStatus
			item.PriceID = &id
		}
		result = append(result, item)
	}
	return result, nil
}

// History returns the supplier's recent price submissions, newest first,
// each annotated with the product's name and SKU.
func (s *SupplierService) History(ctx context.Context, supplierID uuid.UUID) ([]models.SupplierPriceEntry, error) {
	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		return nil, mapLookupErr(err, "Supplier not found")
	}

	history, err := s.prices.HistoryForSupplier(ctx, supplierID, supplierHistoryLimit)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return history, nil
}
