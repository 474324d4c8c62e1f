package controllers

import (
	"net/http"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductController serves the public catalog endpoints.
type ProductController struct {
	catalog   CatalogAPI
	search    SearchAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewProductController(catalog CatalogAPI, search SearchAPI, redisClient *redis.Client) *ProductController {
	return &ProductController{
		catalog:   catalog,
		search:    search,
		cache:     NewCacheManager(redisClient),
		validator: NewRequestValidator(),
	}
}

// GetProducts lists catalog products with resolved prices, filtered by the
// optional category/search/minPrice/maxPrice/supplier query parameters.
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, limit, err := pc.validator.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := pc.validator.ParsePriceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pc.search.SearchAndRank(c.Request.Context(), services.SearchParams{
		Query:    c.Query("search"),
		Category: c.Query("category"),
		Filter:   filter,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProductByID returns a single product with all its supplier prices.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	productID, err := uuid.Parse(id)
	if err != nil {
		zap.L().Warn("Invalid UUID format", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	if cached, ok := pc.cache.Get(c.Request.Context(), ProductCachePrefix, id); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	detail, err := pc.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	pc.cache.SetAsync(ProductCachePrefix, id, detail)
	c.JSON(http.StatusOK, detail)
}

// GetPriceHistory returns a product's recent price records, optionally
// restricted to one supplier.
func (pc *ProductController) GetPriceHistory(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	var supplierID *uuid.UUID
	if raw := c.Query("supplier"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplier ID"})
			return
		}
		supplierID = &id
	}

	history, err := pc.catalog.PriceHistory(c.Request.Context(), productID, supplierID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetCategories lists the distinct categories present in the catalog.
func (pc *ProductController) GetCategories(c *gin.Context) {
	categories, err := pc.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
