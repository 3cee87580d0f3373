package model

import (
	"errors"

	"go-inventory-dash/pkg/validator"

	"github.com/shopspring/decimal"
)

// Item is a stocked good. SupplierID points at the supplier the item is
// normally purchased from; the reference is not cascade-checked, so views
// must tolerate a missing supplier.
type Item struct {
	ID           string          `json:"id"`
	Name         string          `json:"name" validate:"required"`
	Code         string          `json:"code" validate:"required"`
	Barcode      string          `json:"barcode"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category" validate:"required"`
	SupplierID   string          `json:"supplier_id" validate:"required"`
	Stock        int             `json:"stock" validate:"gte=0"`
	ReorderPoint int             `json:"reorder_point" validate:"gte=0"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// NewItem validates the supplied fields and returns an item ready for the
// store. The id is assigned by the store on insert.
func NewItem(fields Item) (*Item, error) {
	if err := validator.FirstError(validator.ValidateStruct(fields)); err != nil {
		return nil, err
	}
	if fields.Price.IsNegative() {
		return nil, errors.New("price must not be negative")
	}
	fields.ID = ""
	return &fields, nil
}
