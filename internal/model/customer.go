package model

import "go-inventory-dash/pkg/validator"

// Customer is a selling party.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// NewCustomer validates the supplied fields. The id is assigned by the store.
func NewCustomer(fields Customer) (*Customer, error) {
	if err := validator.FirstError(validator.ValidateStruct(fields)); err != nil {
		return nil, err
	}
	fields.ID = ""
	return &fields, nil
}
