package services

import (
	"sort"

	"marketplace-service/models"
)

// AggregateStatistics computes the lowest, highest, and average price over a
// resolved price list. An empty list yields zero-value stats rather than an
// error or NaN. Ties are broken by first occurrence in a stable
// price-ascending sort.
func AggregateStatistics(prices []models.ResolvedPrice) PriceStats {
	if len(prices) == 0 {
		return PriceStats{}
	}

	sorted := make([]models.ResolvedPrice, len(prices))
	copy(sorted, prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	lowest := sorted[0]

	// First-encountered among the records sharing the maximum price.
	maxPrice := sorted[len(sorted)-1].Price
	highest := sorted[len(sorted)-1]
	for _, p := range sorted {
		if p.Price == maxPrice {
			highest = p
			break
		}
	}

	var sum float64
	for _, p := range sorted {
		sum += p.Price
	}
	average := sum / float64(len(sorted))

	return PriceStats{
		Lowest:  &lowest,
		Highest: &highest,
		Average: &average,
	}
}

// FilterPrices keeps the entries satisfying every supplied bound. Bounds are
// inclusive on both ends; a supplier filter matches exactly. With no bounds
// the input passes through unchanged.
func FilterPrices(prices []models.ResolvedPrice, filter PriceFilter) []models.ResolvedPrice {
	if filter.Empty() {
		return prices
	}

	filtered := make([]models.ResolvedPrice, 0, len(prices))
	for _, p := range prices {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.SupplierID != nil && p.SupplierID != *filter.SupplierID {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// LowestOf returns the minimum price in the list, or nil for an empty list.
func LowestOf(prices []models.ResolvedPrice) *float64 {
	if len(prices) == 0 {
		return nil
	}
	lowest := prices[0].Price
	for _, p := range prices[1:] {
		if p.Price < lowest {
			lowest = p.Price
		}
	}
	return &lowest
}

// sortByPrice orders a resolved price list ascending by price, supplier ID
// breaking ties so the order is stable across calls.
func sortByPrice(prices []models.ResolvedPrice) {
	sort.SliceStable(prices, func(i, j int) bool {
		if prices[i].Price != prices[j].Price {
			return prices[i].Price < prices[j].Price
		}
		return prices[i].SupplierID.String() < prices[j].SupplierID.String()
	})
}
