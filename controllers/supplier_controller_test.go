package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace-service/middleware"
	"marketplace-service/models"
	"marketplace-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupplierService struct {
	profileFn func(ctx context.Context, supplierID uuid.UUID) (*services.SupplierProfile, error)
}

func (f *fakeSupplierService) Profile(ctx context.Context, supplierID uuid.UUID) (*services.SupplierProfile, error) {
	if f.profileFn != nil {
		return f.profileFn(ctx, supplierID)
	}
	return &services.SupplierProfile{}, nil
}

func (f *fakeSupplierService) Products(_ context.Context, _ uuid.UUID) ([]services.SupplierProduct, error) {
	return []services.SupplierProduct{}, nil
}

func (f *fakeSupplierService) History(_ context.Context, _ uuid.UUID) ([]models.SupplierPriceEntry, error) {
	return []models.SupplierPriceEntry{}, nil
}

// asSupplier injects the context values Protect would set for a supplier
// token.
func asSupplier(supplierID, userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, userID.String())
		c.Set(middleware.RoleContextKey, "supplier")
		c.Set(middleware.SupplierContextKey, supplierID.String())
		c.Next()
	}
}

func newSupplierTestRouter(pricing *fakePricingService, catalog *fakeCatalogService, supplierID, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewSupplierController(&fakeSupplierService{}, pricing, catalog, newTestRedisClient())
	router := gin.New()
	group := router.Group("/supplier", asSupplier(supplierID, userID))
	group.GET("/profile", controller.GetProfile)
	group.POST("/products", controller.CreateProduct)
	group.POST("/products/:productId/price", controller.UpdatePrice)
	group.POST("/products/:productId/add", controller.AddProduct)
	return router
}

func TestUpdatePrice(t *testing.T) {
	pricing := &fakePricingService{}
	productID := uuid.New()
	router := newSupplierTestRouter(pricing, &fakeCatalogService{}, uuid.New(), uuid.New())

	body := `{"price": 49.99, "stockStatus": "limited", "minimumOrderQuantity": 5}`
	req := httptest.NewRequest(http.MethodPost, "/supplier/products/"+productID.String()+"/price", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Equal(t, 1, pricing.submitCalled)
	assert.Equal(t, productID, pricing.lastProductID)
	assert.Equal(t, 49.99, pricing.lastInput.Price)
	assert.Equal(t, "limited", pricing.lastInput.StockStatus)
	assert.Equal(t, 5, pricing.lastInput.MinimumOrderQuantity)
}

func TestUpdatePriceRejectsNegative(t *testing.T) {
	pricing := &fakePricingService{}
	router := newSupplierTestRouter(pricing, &fakeCatalogService{}, uuid.New(), uuid.New())

	body := `{"price": -5}`
	req := httptest.NewRequest(http.MethodPost, "/supplier/products/"+uuid.NewString()+"/price", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, pricing.submitCalled)
}

func TestUpdatePriceRejectsBadStockStatus(t *testing.T) {
	pricing := &fakePricingService{}
	router := newSupplierTestRouter(pricing, &fakeCatalogService{}, uuid.New(), uuid.New())

	body := `{"price": 10, "stockStatus": "backordered"}`
	req := httptest.NewRequest(http.MethodPost, "/supplier/products/"+uuid.NewString()+"/price", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, pricing.submitCalled)
}

func TestUpdatePriceWithoutSupplierContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewSupplierController(&fakeSupplierService{}, &fakePricingService{}, &fakeCatalogService{}, newTestRedisClient())
	router := gin.New()
	router.POST("/supplier/products/:productId/price", controller.UpdatePrice)

	body := `{"price": 10}`
	req := httptest.NewRequest(http.MethodPost, "/supplier/products/"+uuid.NewString()+"/price", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateProductValidation(t *testing.T) {
	router := newSupplierTestRouter(&fakePricingService{}, &fakeCatalogService{}, uuid.New(), uuid.New())

	// Missing required name/description/category/sku.
	req := httptest.NewRequest(http.MethodPost, "/supplier/products", strings.NewReader(`{"brand": "Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateProduct(t *testing.T) {
	var created services.CreateProductInput
	catalog := &fakeCatalogService{
		createFn: func(_ context.Context, input services.CreateProductInput) (*models.Product, error) {
			created = input
			return &models.Product{ID: uuid.New(), Name: input.Name}, nil
		},
	}
	router := newSupplierTestRouter(&fakePricingService{}, catalog, uuid.New(), uuid.New())

	body := `{"name": "Yoga Mat Premium", "description": "Non-slip mat", "category": "Sports", "sku": "MAT-PREM-001"}`
	req := httptest.NewRequest(http.MethodPost, "/supplier/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Yoga Mat Premium", created.Name)
	assert.Equal(t, "MAT-PREM-001", created.SKU)
}

func TestGetProfile(t *testing.T) {
	supplierID := uuid.New()
	router := newSupplierTestRouter(&fakePricingService{}, &fakeCatalogService{}, supplierID, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/supplier/profile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
