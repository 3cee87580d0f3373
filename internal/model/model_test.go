package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-dash/internal/model"
)

func validItem() model.Item {
	return model.Item{
		Name:         "Dell G15 Laptop",
		Code:         "LP-DEL-G15",
		Barcode:      "8991234567890",
		Unit:         "pc",
		Category:     "Electronics",
		SupplierID:   "sup-1",
		Stock:        15,
		ReorderPoint: 5,
		Price:        decimal.NewFromInt(25500),
	}
}

func TestNewItem(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(*model.Item)
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", mutate: func(i *model.Item) {}},
		{name: "ZeroNumericDefaults", mutate: func(i *model.Item) {
			i.Stock = 0
			i.ReorderPoint = 0
			i.Price = decimal.Zero
		}},
		{name: "MissingName", mutate: func(i *model.Item) { i.Name = "" }, wantErr: true},
		{name: "MissingCode", mutate: func(i *model.Item) { i.Code = "" }, wantErr: true},
		{name: "MissingCategory", mutate: func(i *model.Item) { i.Category = "" }, wantErr: true},
		{name: "MissingSupplier", mutate: func(i *model.Item) { i.SupplierID = "" }, wantErr: true},
		{name: "NegativeStock", mutate: func(i *model.Item) { i.Stock = -1 }, wantErr: true},
		{name: "NegativeReorderPoint", mutate: func(i *model.Item) { i.ReorderPoint = -1 }, wantErr: true},
		{name: "NegativePrice", mutate: func(i *model.Item) { i.Price = decimal.NewFromInt(-5) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validItem()
			tt.mutate(&fields)

			item, err := model.NewItem(fields)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, item)

				return
			}

			require.NoError(t, err)
			assert.Empty(t, item.ID, "id is assigned by the store")
			assert.Equal(t, fields.Name, item.Name)
		})
	}
}

func TestNewSupplier(t *testing.T) {
	sup, err := model.NewSupplier(model.Supplier{Name: "United Suppliers", Phone: "01234567890"})
	require.NoError(t, err)
	assert.Empty(t, sup.ID)

	_, err = model.NewSupplier(model.Supplier{Phone: "01234567890"})
	assert.Error(t, err)

	_, err = model.NewSupplier(model.Supplier{Name: "United Suppliers"})
	assert.Error(t, err)
}

func TestNewCustomer(t *testing.T) {
	cust, err := model.NewCustomer(model.Customer{Name: "Al Nour Engineering", Phone: "01099887766"})
	require.NoError(t, err)
	assert.Empty(t, cust.ID)

	_, err = model.NewCustomer(model.Customer{Phone: "01099887766"})
	assert.Error(t, err)

	_, err = model.NewCustomer(model.Customer{Name: "Al Nour Engineering"})
	assert.Error(t, err)
}

func TestNewTransaction(t *testing.T) {
	type testCase struct {
		name    string
		fields  model.Transaction
		wantErr bool
	}

	tests := []testCase{
		{
			name:   "ValidPurchase",
			fields: model.Transaction{ItemID: "it-1", Type: model.TxPurchase, Quantity: 10, Date: "2023-10-01", RelatedPartyID: "sup-1"},
		},
		{
			name:   "TransferWithoutParty",
			fields: model.Transaction{ItemID: "it-1", Type: model.TxTransfer, Quantity: 3, Date: "2023-10-01"},
		},
		{
			name:    "MissingItem",
			fields:  model.Transaction{Type: model.TxPurchase, Quantity: 10, Date: "2023-10-01", RelatedPartyID: "sup-1"},
			wantErr: true,
		},
		{
			name:    "UnknownType",
			fields:  model.Transaction{ItemID: "it-1", Type: "GIFT", Quantity: 10, Date: "2023-10-01", RelatedPartyID: "sup-1"},
			wantErr: true,
		},
		{
			name:    "ZeroQuantity",
			fields:  model.Transaction{ItemID: "it-1", Type: model.TxPurchase, Quantity: 0, Date: "2023-10-01", RelatedPartyID: "sup-1"},
			wantErr: true,
		},
		{
			name:    "NegativeQuantity",
			fields:  model.Transaction{ItemID: "it-1", Type: model.TxPurchase, Quantity: -2, Date: "2023-10-01", RelatedPartyID: "sup-1"},
			wantErr: true,
		},
		{
			name:    "BadDate",
			fields:  model.Transaction{ItemID: "it-1", Type: model.TxPurchase, Quantity: 10, Date: "2023-13-45", RelatedPartyID: "sup-1"},
			wantErr: true,
		},
		{
			name:    "SaleWithoutParty",
			fields:  model.Transaction{ItemID: "it-1", Type: model.TxSale, Quantity: 10, Date: "2023-10-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := model.NewTransaction(tt.fields)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tx)

				return
			}

			require.NoError(t, err)
			assert.Empty(t, tx.ID)
		})
	}
}
