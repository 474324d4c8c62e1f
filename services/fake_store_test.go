package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"marketplace-service/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStore is an in-memory stand-in for the Mongo repositories. Writes are
// serialized with a mutex, which mirrors the per-pair transaction the real
// price repository uses.
type fakeStore struct {
	mu           sync.Mutex
	products     map[uuid.UUID]models.Product
	productOrder []uuid.UUID
	suppliers    map[uuid.UUID]models.Supplier
	records      []models.PriceRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[uuid.UUID]models.Product),
		suppliers: make(map[uuid.UUID]models.Supplier),
	}
}

// --- ProductRepo ---

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (f *fakeStore) Search(_ context.Context, query, category string, limit, skip int) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matches := f.matches(query, category)
	if skip >= len(matches) {
		return nil, nil
	}
	matches = matches[skip:]
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeStore) CountSearch(_ context.Context, query, category string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.matches(query, category))), nil
}

func (f *fakeStore) matches(query, category string) []models.Product {
	var result []models.Product
	for _, id := range f.productOrder {
		p := f.products[id]
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (f *fakeStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeStore) Create(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = *product
	f.productOrder = append(f.productOrder, product.ID)
	return nil
}

func (f *fakeStore) DistinctCategories(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]bool)
	var categories []string
	for _, id := range f.productOrder {
		c := f.products[id].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (f *fakeStore) EnsureIndexes(_ context.Context) error { return nil }

// --- SupplierRepo ---

func (f *fakeStore) FindSupplierByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.suppliers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &s, nil
}

func (f *fakeStore) CreateSupplier(_ context.Context, supplier *models.Supplier) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suppliers[supplier.ID] = *supplier
	return nil
}

// --- PriceRepo ---

func (f *fakeStore) ActiveForProduct(_ context.Context, productID uuid.UUID) ([]models.ResolvedPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	latest := make(map[uuid.UUID]models.PriceRecord)
	for _, rec := range f.records {
		if rec.ProductID != productID || !rec.IsActive {
			continue
		}
		current, ok := latest[rec.SupplierID]
		if !ok || rec.CreatedAt.After(current.CreatedAt) {
			latest[rec.SupplierID] = rec
		}
	}

	var prices []models.ResolvedPrice
	for supplierID, rec := range latest {
		prices = append(prices, models.ResolvedPrice{
			PriceRecord:  rec,
			SupplierInfo: f.suppliers[supplierID],
		})
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Price < prices[j].Price })
	return prices, nil
}

func (f *fakeStore) ActiveForPair(_ context.Context, productID, supplierID uuid.UUID) (*models.PriceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.records) - 1; i >= 0; i-- {
		rec := f.records[i]
		if rec.ProductID == productID && rec.SupplierID == supplierID && rec.IsActive {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) HistoryForProduct(_ context.Context, productID uuid.UUID, supplierID *uuid.UUID, limit int) ([]models.ResolvedPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var history []models.ResolvedPrice
	for i := len(f.records) - 1; i >= 0 && len(history) < limit; i-- {
		rec := f.records[i]
		if rec.ProductID != productID {
			continue
		}
		if supplierID != nil && rec.SupplierID != *supplierID {
			continue
		}
		history = append(history, models.ResolvedPrice{
			PriceRecord:  rec,
			SupplierInfo: f.suppliers[rec.SupplierID],
		})
	}
	return history, nil
}

func (f *fakeStore) HistoryForSupplier(_ context.Context, supplierID uuid.UUID, limit int) ([]models.SupplierPriceEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var history []models.SupplierPriceEntry
	for i := len(f.records) - 1; i >= 0 && len(history) < limit; i-- {
		rec := f.records[i]
		if rec.SupplierID != supplierID {
			continue
		}
		p := f.products[rec.ProductID]
		history = append(history, models.SupplierPriceEntry{
			PriceRecord: rec,
			ProductInfo: models.ProductSummary{Name: p.Name, SKU: p.SKU},
		})
	}
	return history, nil
}

func (f *fakeStore) SubmitActive(_ context.Context, rec *models.PriceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deactivatePair(rec.ProductID, rec.SupplierID)
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) SubmitActiveWithCatalog(_ context.Context, rec *models.PriceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.products[rec.ProductID]; ok && !containsID(p.Suppliers, rec.SupplierID) {
		p.Suppliers = append(p.Suppliers, rec.SupplierID)
		f.products[rec.ProductID] = p
	}
	if s, ok := f.suppliers[rec.SupplierID]; ok && !containsID(s.ProductsSupplied, rec.ProductID) {
		s.ProductsSupplied = append(s.ProductsSupplied, rec.ProductID)
		f.suppliers[rec.SupplierID] = s
	}

	f.deactivatePair(rec.ProductID, rec.SupplierID)
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeStore) deactivatePair(productID, supplierID uuid.UUID) {
	for i := range f.records {
		if f.records[i].ProductID == productID && f.records[i].SupplierID == supplierID {
			f.records[i].IsActive = false
		}
	}
}

// activeCount reports the number of active records for a pair.
func (f *fakeStore) activeCount(productID, supplierID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, rec := range f.records {
		if rec.ProductID == productID && rec.SupplierID == supplierID && rec.IsActive {
			count++
		}
	}
	return count
}

// supplierView adapts the fake store to the SupplierRepo interface, whose
// method names collide with ProductRepo's.
type supplierView struct{ *fakeStore }

func (v supplierView) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return v.FindSupplierByID(ctx, id)
}

func (v supplierView) Create(ctx context.Context, supplier *models.Supplier) error {
	return v.CreateSupplier(ctx, supplier)
}
