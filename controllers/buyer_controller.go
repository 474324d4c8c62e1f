package controllers

import (
	"net/http"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// BuyerController serves the buyer-facing comparison and search endpoints.
type BuyerController struct {
	pricing   PricingAPI
	search    SearchAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewBuyerController(pricing PricingAPI, search SearchAPI, redisClient *redis.Client) *BuyerController {
	return &BuyerController{
		pricing:   pricing,
		search:    search,
		cache:     NewCacheManager(redisClient),
		validator: NewRequestValidator(),
	}
}

// ComparePrices returns a product's resolved prices sorted ascending plus
// the lowest/highest/average statistics. A product nobody prices yet yields
// an empty comparison with null statistics.
func (bc *BuyerController) ComparePrices(c *gin.Context) {
	id := c.Param("id")
	productID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	if cached, ok := bc.cache.Get(c.Request.Context(), CompareCachePrefix, id); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	comparison, err := bc.pricing.ComparePrices(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{
		"product":         comparison.Product,
		"priceComparison": comparison.Prices,
		"lowestPrice":     comparison.Stats.Lowest,
		"highestPrice":    comparison.Stats.Highest,
		"averagePrice":    comparison.Stats.Average,
	}

	bc.cache.SetAsync(CompareCachePrefix, id, response)
	c.JSON(http.StatusOK, response)
}

// SearchProducts searches the catalog and ranks results by ascending lowest
// resolved price unless another sort is requested.
func (bc *BuyerController) SearchProducts(c *gin.Context) {
	page, limit, err := bc.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := bc.validator.ParsePriceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := bc.search.SearchAndRank(c.Request.Context(), services.SearchParams{
		Query:    c.Query("query"),
		Category: c.Query("category"),
		Filter:   filter,
		SortBy:   c.DefaultQuery("sortBy", services.SortByPrice),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
