package model

import "go-inventory-dash/pkg/validator"

// Supplier is a purchasing party. TaxId is informational only, no
// uniqueness is enforced on it.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
}

// NewSupplier validates the supplied fields. The id is assigned by the store.
func NewSupplier(fields Supplier) (*Supplier, error) {
	if err := validator.FirstError(validator.ValidateStruct(fields)); err != nil {
		return nil, err
	}
	fields.ID = ""
	return &fields, nil
}
