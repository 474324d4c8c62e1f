package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategories is the catalog taxonomy buyers filter on.
var ProductCategories = []string{
	"Electronics",
	"Clothing",
	"Food",
	"Books",
	"Home",
	"Sports",
	"Other",
}

// ValidCategory reports whether c is one of the known catalog categories.
func ValidCategory(c string) bool {
	for _, cat := range ProductCategories {
		if c == cat {
			return true
		}
	}
	return false
}

type Product struct {
	ID             uuid.UUID         `json:"_id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Description    string            `json:"description" bson:"description"`
	Category       string            `json:"category" bson:"category"`
	SubCategory    string            `json:"subCategory,omitempty" bson:"sub_category,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty" bson:"specifications,omitempty"`
	Thumbnail      string            `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Unit           string            `json:"unit" bson:"unit"`
	Brand          string            `json:"brand,omitempty" bson:"brand,omitempty"`
	SKU            string            `json:"sku" bson:"sku"`
	Suppliers      []uuid.UUID       `json:"suppliers" bson:"suppliers"`
	CreatedAt      time.Time         `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updated_at"`
}
