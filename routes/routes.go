package routes

import (
	"marketplace-service/controllers"
	"marketplace-service/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface. Public catalog reads need no token;
// the supplier and buyer groups require the matching role claim. Price
// writes sit behind the stricter rate-limit tier.
func RegisterRoutes(
	r *gin.Engine,
	pc *controllers.ProductController,
	sc *controllers.SupplierController,
	bc *controllers.BuyerController,
	jwtSecret []byte,
) {
	api := r.Group("/api")
	api.Use(middleware.APILimit())

	products := api.Group("/products")
	{
		products.GET("/", pc.GetProducts)
		products.GET("/categories", pc.GetCategories)
		products.GET("/:id", pc.GetProductByID)
		products.GET("/:id/price-history", pc.GetPriceHistory)
	}

	supplier := api.Group("/supplier")
	supplier.Use(middleware.Protect(jwtSecret), middleware.RequireRole("supplier"))
	{
		supplier.GET("/profile", sc.GetProfile)
		supplier.GET("/products", sc.GetProducts)
		supplier.GET("/price-history", sc.GetPriceHistory)

		writes := supplier.Group("", middleware.PriceUpdateLimit())
		writes.POST("/products", sc.CreateProduct)
		writes.POST("/products/:productId/price", sc.UpdatePrice)
		writes.POST("/products/:productId/add", sc.AddProduct)
	}

	buyer := api.Group("/buyer")
	buyer.Use(middleware.Protect(jwtSecret), middleware.RequireRole("buyer"))
	{
		buyer.GET("/search", bc.SearchProducts)
		buyer.GET("/products/:id/compare", bc.ComparePrices)
	}
}
