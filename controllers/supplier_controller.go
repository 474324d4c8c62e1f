package controllers

import (
	"net/http"

	"marketplace-service/middleware"
	"marketplace-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierController serves the supplier dashboard and the price write path.
type SupplierController struct {
	suppliers SupplierAPI
	pricing   PricingAPI
	catalog   CatalogAPI
	cache     *CacheManager
	validator *RequestValidator
}

func NewSupplierController(suppliers SupplierAPI, pricing PricingAPI, catalog CatalogAPI, redisClient *redis.Client) *SupplierController {
	return &SupplierController{
		suppliers: suppliers,
		pricing:   pricing,
		catalog:   catalog,
		cache:     NewCacheManager(redisClient),
		validator: NewRequestValidator(),
	}
}

// GetProfile returns the authenticated supplier's profile with its supplied
// products.
func (sc *SupplierController) GetProfile(c *gin.Context) {
	supplierID, err := middleware.SupplierID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := sc.suppliers.Profile(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProducts lists the supplier's products with their current offer.
func (sc *SupplierController) GetProducts(c *gin.Context) {
	supplierID, err := middleware.SupplierID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	products, err := sc.suppliers.Products(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetPriceHistory lists the supplier's recent price submissions.
func (sc *SupplierController) GetPriceHistory(c *gin.Context) {
	supplierID, err := middleware.SupplierID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := sc.suppliers.History(c.Request.Context(), supplierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// UpdatePrice records a new price for a product the supplier already
// supplies, superseding the previous active record.
func (sc *SupplierController) UpdatePrice(c *gin.Context) {
	sc.submitPrice(c, false)
}

// AddProduct adds a product to the supplier's catalog and records the
// initial price.
func (sc *SupplierController) AddProduct(c *gin.Context) {
	sc.submitPrice(c, true)
}

func (sc *SupplierController) submitPrice(c *gin.Context, addToCatalog bool) {
	supplierID, err := middleware.SupplierID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	submitterID, err := middleware.UserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid UUID format"})
		return
	}

	var req SubmitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := sc.validator.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.PriceInput{
		Price:                req.Price,
		Currency:             req.Currency,
		StockStatus:          req.StockStatus,
		MinimumOrderQuantity: req.MinimumOrderQuantity,
	}

	var record interface{}
	if addToCatalog {
		record, err = sc.pricing.AddProductToCatalog(c.Request.Context(), productID, supplierID, input, submitterID)
	} else {
		record, err = sc.pricing.SubmitPrice(c.Request.Context(), productID, supplierID, input, submitterID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	// Cached comparisons are stale the moment a new price lands.
	sc.cache.Invalidate(c.Request.Context())

	zap.L().Info("Price submitted",
		zap.String("product_id", productID.String()),
		zap.String("supplier_id", supplierID.String()),
		zap.Float64("price", req.Price),
	)
	c.JSON(http.StatusCreated, record)
}

// CreateProduct adds a new product to the shared catalog.
func (sc *SupplierController) CreateProduct(c *gin.Context) {
	if _, err := middleware.SupplierID(c); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := sc.validator.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := sc.catalog.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Specifications: req.Specifications,
		Unit:           req.Unit,
		Brand:          req.Brand,
		SKU:            req.SKU,
		Thumbnail:      req.Thumbnail,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	sc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, product)
}
