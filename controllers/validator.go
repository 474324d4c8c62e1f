package controllers

import (
	"fmt"
	"strconv"

	"marketplace-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validation constants
const (
	MaxPageSize   = 100
	MaxPageNumber = 1000000
)

// RequestValidator handles all input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// ValidateStruct runs the struct's validate tags.
func (rv *RequestValidator) ValidateStruct(s interface{}) error {
	return rv.validate.Struct(s)
}

// ParsePagination validates and parses pagination parameters.
func (rv *RequestValidator) ParsePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > MaxPageNumber {
		return 0, 0, fmt.Errorf("page number too large")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = services.DefaultPageSize
	}
	if limit > MaxPageSize {
		return 0, 0, fmt.Errorf("limit exceeds maximum of %d", MaxPageSize)
	}

	return page, limit, nil
}

// ParsePriceFilter parses the optional minPrice/maxPrice/supplier query
// parameters into a price filter.
func (rv *RequestValidator) ParsePriceFilter(c *gin.Context) (services.PriceFilter, error) {
	var filter services.PriceFilter

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid minPrice")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid maxPrice")
		}
		filter.MaxPrice = &v
	}
	if raw := c.Query("supplier"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid supplier ID")
		}
		filter.SupplierID = &id
	}
	return filter, nil
}
