package catalog

import (
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/toko-pricing/pricing"
)

// Product is a catalog line supplied by an external catalog system.
// Identity is carried by ID: two values with the same ID represent the
// same catalog line regardless of where they were loaded from.
type Product struct {
	ID    uuid.UUID     `validate:"required"`
	Price pricing.Money `validate:"gte=0"`
}

var validate = validator.New()

// Validate checks a record ingested from an external catalog: the ID must
// be set and the price non-negative.
func Validate(p Product) error {
	return validate.Struct(p)
}
