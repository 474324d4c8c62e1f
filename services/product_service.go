package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-service/errs"
	"marketplace-service/models"
	"marketplace-service/repository"

	"github.com/google/uuid"
)

const priceHistoryLimit = 50

// ProductService covers the catalog: product detail with resolved prices,
// price history, categories, and product creation.
type ProductService struct {
	products repository.ProductRepo
	prices   repository.PriceRepo
}

func NewProductService(pr repository.ProductRepo, prr repository.PriceRepo) *ProductService {
	return &ProductService{
		products: pr,
		prices:   prr,
	}
}

// GetProduct returns a product with all its resolved supplier prices.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err, "Product not found")
	}

	prices, err := s.prices.ActiveForProduct(ctx, id)
	if err != nil {
		return nil, errs.Internal(err)
	}
	sortByPrice(prices)

	return &ProductDetail{Product: *product, Prices: prices}, nil
}

// PriceHistory returns a product's recent price records, newest first,
// optionally restricted to one supplier.
func (s *ProductService) PriceHistory(ctx context.Context, productID uuid.UUID, supplierID *uuid.UUID) ([]models.ResolvedPrice, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, mapLookupErr(err, "Product not found")
	}

	history, err := s.prices.HistoryForProduct(ctx, productID, supplierID, priceHistoryLimit)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return history, nil
}

// Categories returns the distinct categories present in the catalog.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.products.DistinctCategories(ctx)
	if err != nil {
		return nil, errs.Internal(err)
	}
	return categories, nil
}

// CreateProduct adds a product to the shared catalog. The creating supplier
// is not automatically listed as supplying it; that happens on the first
// price submission via AddProductToCatalog.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)

	if input.Name == "" {
		return nil, errs.Validation("Product name is required")
	}
	if input.Description == "" {
		return nil, errs.Validation("Product description is required")
	}
	if input.SKU == "" {
		return nil, errs.Validation("SKU is required")
	}
	if !models.ValidCategory(input.Category) {
		return nil, errs.Validation(fmt.Sprintf("Invalid category %q", input.Category))
	}
	if input.Unit == "" {
		input.Unit = "piece"
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		SubCategory:    input.SubCategory,
		Specifications: input.Specifications,
		Thumbnail:      input.Thumbnail,
		Unit:           input.Unit,
		Brand:          input.Brand,
		SKU:            input.SKU,
		Suppliers:      []uuid.UUID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, errs.Internal(err)
	}
	return product, nil
}
