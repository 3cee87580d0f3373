package model

import (
	"errors"
	"fmt"
	"time"

	"go-inventory-dash/pkg/validator"
)

type TransactionType string

const (
	TxPurchase       TransactionType = "PURCHASE"
	TxSale           TransactionType = "SALE"
	TxPurchaseReturn TransactionType = "PURCHASE_RETURN"
	TxSaleReturn     TransactionType = "SALE_RETURN"
	TxTransfer       TransactionType = "TRANSFER"
)

// DateLayout is the calendar-date format carried by transactions. No time
// component.
const DateLayout = "2006-01-02"

// Transaction records one stock movement for an item. Transactions are
// append-only and immutable once recorded; the transaction list is the only
// history the system keeps.
//
// RelatedPartyID names a supplier for purchase-family movements, a customer
// for sale-family movements, and is empty for internal transfers.
type Transaction struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id" validate:"required"`
	Type           TransactionType `json:"type" validate:"required,oneof=PURCHASE SALE PURCHASE_RETURN SALE_RETURN TRANSFER"`
	Quantity       int             `json:"quantity" validate:"required,gte=1"`
	Date           string          `json:"date" validate:"required"`
	RelatedPartyID string          `json:"related_party_id"`
}

// IsPurchaseFamily reports whether the related party of this type is a
// supplier.
func (t TransactionType) IsPurchaseFamily() bool {
	return t == TxPurchase || t == TxPurchaseReturn
}

// IsSaleFamily reports whether the related party of this type is a customer.
func (t TransactionType) IsSaleFamily() bool {
	return t == TxSale || t == TxSaleReturn
}

// NewTransaction validates the supplied fields and returns a transaction
// ready for the store. The id is assigned by the store on insert.
func NewTransaction(fields Transaction) (*Transaction, error) {
	if err := validator.FirstError(validator.ValidateStruct(fields)); err != nil {
		return nil, err
	}
	if _, err := time.Parse(DateLayout, fields.Date); err != nil {
		return nil, fmt.Errorf("date must be a valid calendar date (%s)", DateLayout)
	}
	if fields.Type != TxTransfer && fields.RelatedPartyID == "" {
		return nil, errors.New("related party is required for non-transfer transactions")
	}
	fields.ID = ""
	return &fields, nil
}
