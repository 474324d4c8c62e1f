package repository

import (
	"context"
	"time"

	"marketplace-service/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PriceRepository owns the price ledger. It keeps a client handle alongside
// the collections because the submit path runs in a multi-document
// transaction.
type PriceRepository struct {
	client    *mongo.Client
	prices    *mongo.Collection
	products  *mongo.Collection
	suppliers *mongo.Collection
}

func NewPriceRepository(client *mongo.Client, db *mongo.Database) *PriceRepository {
	return &PriceRepository{
		client:    client,
		prices:    db.Collection("price_records"),
		products:  db.Collection("products"),
		suppliers: db.Collection("suppliers"),
	}
}

// ActiveForProduct resolves the current price per supplier for a product.
// At most one record per pair is active, so grouping reduces to picking that
// record; the sort on created_at then _id keeps the result deterministic
// even if a race ever leaves two active records for the same pair.
func (r *PriceRepository) ActiveForProduct(ctx context.Context, productID uuid.UUID) ([]models.ResolvedPrice, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"product_id": productID, "is_active": true}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$supplier_id",
			"latest": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$latest"}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "suppliers",
			"localField":   "supplier_id",
			"foreignField": "_id",
			"as":           "supplier_info",
		}}},
		{{Key: "$unwind", Value: "$supplier_info"}},
		{{Key: "$sort", Value: bson.D{
			{Key: "price", Value: 1},
			{Key: "supplier_id", Value: 1},
		}}},
	}

	cursor, err := r.prices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prices []models.ResolvedPrice
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *PriceRepository) ActiveForPair(ctx context.Context, productID, supplierID uuid.UUID) (*models.PriceRecord, error) {
	filter := bson.M{
		"product_id":  productID,
		"supplier_id": supplierID,
		"is_active":   true,
	}
	findOptions := options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	var record models.PriceRecord
	err := r.prices.FindOne(ctx, filter, findOptions).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PriceRepository) HistoryForProduct(ctx context.Context, productID uuid.UUID, supplierID *uuid.UUID, limit int) ([]models.ResolvedPrice, error) {
	match := bson.M{"product_id": productID}
	if supplierID != nil {
		match["supplier_id"] = *supplierID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "suppliers",
			"localField":   "supplier_id",
			"foreignField": "_id",
			"as":           "supplier_info",
		}}},
		{{Key: "$unwind", Value: "$supplier_info"}},
	}

	cursor, err := r.prices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.ResolvedPrice
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *PriceRepository) HistoryForSupplier(ctx context.Context, supplierID uuid.UUID, limit int) ([]models.SupplierPriceEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"supplier_id": supplierID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "product_id",
			"foreignField": "_id",
			"as":           "product_info",
		}}},
		{{Key: "$unwind", Value: "$product_info"}},
	}

	cursor, err := r.prices.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.SupplierPriceEntry
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SubmitActive runs the deactivate-then-insert transition in a transaction
// so two concurrent submissions for the same pair cannot leave zero or two
// active records.
func (r *PriceRepository) SubmitActive(ctx context.Context, rec *models.PriceRecord) error {
	return r.submitInTransaction(ctx, rec, false)
}

// SubmitActiveWithCatalog also adds the supplier to the product's supplier
// set and vice versa, for the first submission of a new pair.
func (r *PriceRepository) SubmitActiveWithCatalog(ctx context.Context, rec *models.PriceRecord) error {
	return r.submitInTransaction(ctx, rec, true)
}

func (r *PriceRepository) submitInTransaction(ctx context.Context, rec *models.PriceRecord, updateCatalog bool) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if updateCatalog {
			if _, err := r.products.UpdateOne(sc,
				bson.M{"_id": rec.ProductID},
				bson.M{"$addToSet": bson.M{"suppliers": rec.SupplierID}},
			); err != nil {
				return nil, err
			}
			if _, err := r.suppliers.UpdateOne(sc,
				bson.M{"_id": rec.SupplierID},
				bson.M{"$addToSet": bson.M{"products_supplied": rec.ProductID}},
			); err != nil {
				return nil, err
			}
		}

		if _, err := r.prices.UpdateMany(sc,
			bson.M{
				"product_id":  rec.ProductID,
				"supplier_id": rec.SupplierID,
				"is_active":   true,
			},
			bson.M{"$set": bson.M{"is_active": false}},
		); err != nil {
			return nil, err
		}

		_, err := r.prices.InsertOne(sc, rec)
		return nil, err
	})
	return err
}

func (r *PriceRepository) EnsureIndexes(ctx context.Context) error {
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "product_id", Value: 1},
			{Key: "supplier_id", Value: 1},
			{Key: "is_active", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "product_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "supplier_id", Value: 1},
			{Key: "created_at", Value: -1},
		}},
	}
	_, err := r.prices.Indexes().CreateMany(indexCtx, indexes)
	return err
}
