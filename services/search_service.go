package services

import (
	"context"
	"math"
	"sort"

	"marketplace-service/errs"
	"marketplace-service/repository"
)

const (
	DefaultPageSize = 20
	SortByPrice     = "price"
)

// SearchService combines catalog search with per-product price resolution
// and ranking.
type SearchService struct {
	products repository.ProductRepo
	prices   repository.PriceRepo
}

func NewSearchService(pr repository.ProductRepo, prr repository.PriceRepo) *SearchService {
	return &SearchService{
		products: pr,
		prices:   prr,
	}
}

// SearchAndRank pages through the catalog matches, resolves prices per
// product, applies the price filter in memory, and ranks the page.
//
// Total and TotalPages come from the catalog match count before the price
// filter, so a filtered page may hold fewer than PageSize items. Filtering
// after paging keeps the catalog pagination stable while a supplier is
// adjusting prices.
func (s *SearchService) SearchAndRank(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = DefaultPageSize
	}
	skip := (params.Page - 1) * params.PageSize

	products, err := s.products.Search(ctx, params.Query, params.Category, params.PageSize, skip)
	if err != nil {
		return nil, errs.Internal(err)
	}

	items := make([]ProductWithPrices, 0, len(products))
	for _, product := range products {
		prices, err := s.prices.ActiveForProduct(ctx, product.ID)
		if err != nil {
			return nil, errs.Internal(err)
		}
		prices = FilterPrices(prices, params.Filter)
		sortByPrice(prices)

		items = append(items, ProductWithPrices{
			Product:     product,
			Prices:      prices,
			LowestPrice: LowestOf(prices),
		})
	}

	if params.SortBy == SortByPrice {
		rankByLowestPrice(items)
	}

	total, err := s.products.CountSearch(ctx, params.Query, params.Category)
	if err != nil {
		return nil, errs.Internal(err)
	}

	return &SearchResult{
		Items:      items,
		Page:       params.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(params.PageSize))),
		Total:      total,
	}, nil
}

// rankByLowestPrice orders items ascending by resolved lowest price.
// Products with no resolved price rank after every priced product.
func rankByLowestPrice(items []ProductWithPrices) {
	sort.SliceStable(items, func(i, j int) bool {
		return effectivePrice(items[i]) < effectivePrice(items[j])
	})
}

func effectivePrice(item ProductWithPrices) float64 {
	if item.LowestPrice == nil {
		return math.Inf(1)
	}
	return *item.LowestPrice
}
