// Seeds the marketplace database with suppliers, products, and staggered
// price history so the comparison views have data to show. Wipes the
// existing collections first.
package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"marketplace-service/database"
	"marketplace-service/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	_ = godotenv.Load()

	mongoURL := envOr("MONGO_URL", "mongodb://localhost:27017")
	dbName := envOr("MONGO_DB", "marketplace")

	client, db, err := database.Connect(mongoURL, dbName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Close(client)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, name := range []string{"products", "suppliers", "price_records"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			zap.L().Fatal("Failed to drop collection", zap.String("collection", name), zap.Error(err))
		}
	}

	suppliers := buildSuppliers()
	products := buildProducts()

	if err := seed(ctx, db, suppliers, products); err != nil {
		zap.L().Fatal("Seeding failed", zap.Error(err))
	}

	zap.L().Info("Database seeded",
		zap.Int("suppliers", len(suppliers)),
		zap.Int("products", len(products)),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seed(ctx context.Context, db *mongo.Database, suppliers []models.Supplier, products []models.Product) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	var records []interface{}
	for pi := range products {
		for si := range suppliers {
			// Not every supplier carries every product.
			if (pi+si)%4 == 3 {
				continue
			}
			products[pi].Suppliers = append(products[pi].Suppliers, suppliers[si].ID)
			suppliers[si].ProductsSupplied = append(suppliers[si].ProductsSupplied, products[pi].ID)

			base := 50 + rng.Float64()*950
			// Two superseded entries plus the current active one.
			for age := 2; age >= 0; age-- {
				records = append(records, models.PriceRecord{
					ID:                   uuid.New(),
					ProductID:            products[pi].ID,
					SupplierID:           suppliers[si].ID,
					Price:                round2(base * (1 + float64(age)*0.05)),
					Currency:             "USD",
					StockStatus:          stockStatusFor(rng, age),
					MinimumOrderQuantity: 1 + rng.Intn(5),
					UpdatedBy:            suppliers[si].ID,
					IsActive:             age == 0,
					CreatedAt:            now.Add(-time.Duration(age*7*24) * time.Hour),
				})
			}
		}
	}

	supplierDocs := make([]interface{}, len(suppliers))
	for i, s := range suppliers {
		supplierDocs[i] = s
	}
	productDocs := make([]interface{}, len(products))
	for i, p := range products {
		productDocs[i] = p
	}

	if _, err := db.Collection("suppliers").InsertMany(ctx, supplierDocs); err != nil {
		return err
	}
	if _, err := db.Collection("products").InsertMany(ctx, productDocs); err != nil {
		return err
	}
	if _, err := db.Collection("price_records").InsertMany(ctx, records); err != nil {
		return err
	}
	return nil
}

func stockStatusFor(rng *rand.Rand, age int) string {
	if age > 0 {
		return models.StockStatusInStock
	}
	switch rng.Intn(5) {
	case 0:
		return models.StockStatusLimited
	case 1:
		return models.StockStatusOutOfStock
	default:
		return models.StockStatusInStock
	}
}

func round2(v float64) float64 {
	return float64(int(v*100)) / 100
}

func buildSuppliers() []models.Supplier {
	now := time.Now().UTC()
	base := []struct {
		name, company, email, city string
		rating                     float64
		verified                   bool
	}{
		{"TechSource Inc", "TechSource Incorporated", "contact@techsource.example", "San Jose", 4.5, true},
		{"Global Supplies Co", "Global Supplies Company", "sales@globalsupplies.example", "Chicago", 4.2, true},
		{"Prime Distributors", "Prime Distributors LLC", "info@primedist.example", "Austin", 3.8, false},
		{"Metro Wholesale", "Metro Wholesale Group", "orders@metrowholesale.example", "Seattle", 4.7, true},
	}

	suppliers := make([]models.Supplier, len(base))
	for i, b := range base {
		suppliers[i] = models.Supplier{
			ID:               uuid.New(),
			Name:             b.name,
			CompanyName:      b.company,
			Email:            b.email,
			Phone:            "555-0100",
			Address:          models.Address{City: b.city, Country: "USA"},
			Verified:         b.verified,
			Rating:           b.rating,
			ProductsSupplied: []uuid.UUID{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}
	return suppliers
}

func buildProducts() []models.Product {
	now := time.Now().UTC()
	base := []struct {
		name, description, category, subCategory, brand, sku string
		specs                                                map[string]string
	}{
		{
			"Laptop Dell XPS 15",
			"High-performance laptop with Intel Core i7, 16GB RAM, and 512GB SSD",
			"Electronics", "Computers", "Dell", "DELL-XPS-15-001",
			map[string]string{"Processor": "Intel Core i7", "RAM": "16GB", "Storage": "512GB SSD"},
		},
		{
			"iPhone 14 Pro",
			"Latest iPhone with A16 Bionic chip and advanced camera system",
			"Electronics", "Phones", "Apple", "APPLE-IP14PRO-001",
			map[string]string{"Processor": "A16 Bionic", "Storage": "256GB"},
		},
		{
			"Samsung 55\" 4K Smart TV",
			"Crystal UHD 4K Smart TV with HDR support",
			"Electronics", "TVs", "Samsung", "SAMSUNG-TV55-001",
			map[string]string{"Screen Size": "55 inches", "Resolution": "4K UHD"},
		},
		{
			"Sony WH-1000XM4 Headphones",
			"Premium noise-canceling wireless headphones",
			"Electronics", "Audio", "Sony", "SONY-WH1000XM4-001",
			map[string]string{"Battery Life": "30 hours", "Noise Canceling": "Yes"},
		},
		{
			"Organic Coffee Beans 1kg",
			"Fair-trade arabica beans, medium roast",
			"Food", "Beverages", "Highland Roast", "COFFEE-HR-1KG-001",
			map[string]string{"Roast": "Medium", "Origin": "Colombia"},
		},
		{
			"Cotton T-Shirt Classic",
			"Plain crew-neck t-shirt, 100% combed cotton",
			"Clothing", "Shirts", "BasicWear", "SHIRT-BW-CL-001",
			map[string]string{"Material": "100% Cotton", "Fit": "Regular"},
		},
		{
			"Yoga Mat Pro 6mm",
			"Non-slip exercise mat with carrying strap",
			"Sports", "Fitness", "FlexFit", "MAT-FF-6MM-001",
			map[string]string{"Thickness": "6mm", "Material": "TPE"},
		},
		{
			"Stainless Cookware Set",
			"10-piece stainless steel pots and pans set",
			"Home", "Kitchen", "ChefLine", "COOK-CL-10PC-001",
			map[string]string{"Pieces": "10", "Material": "Stainless Steel"},
		},
	}

	products := make([]models.Product, len(base))
	for i, b := range base {
		products[i] = models.Product{
			ID:             uuid.New(),
			Name:           b.name,
			Description:    b.description,
			Category:       b.category,
			SubCategory:    b.subCategory,
			Specifications: b.specs,
			Unit:           "piece",
			Brand:          b.brand,
			SKU:            b.sku,
			Suppliers:      []uuid.UUID{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}
	return products
}
