package models

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zip_code,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

type Supplier struct {
	ID               uuid.UUID   `json:"_id" bson:"_id"`
	Name             string      `json:"name" bson:"name"`
	CompanyName      string      `json:"companyName" bson:"company_name"`
	Email            string      `json:"email" bson:"email"`
	Phone            string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Address          Address     `json:"address,omitempty" bson:"address,omitempty"`
	Description      string      `json:"description,omitempty" bson:"description,omitempty"`
	Verified         bool        `json:"verified" bson:"verified"`
	Rating           float64     `json:"rating" bson:"rating"`
	ProductsSupplied []uuid.UUID `json:"productsSupplied" bson:"products_supplied"`
	CreatedAt        time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time   `json:"updatedAt" bson:"updated_at"`
}
