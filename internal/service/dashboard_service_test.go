package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-inventory-dash/internal/model"
	"go-inventory-dash/internal/service"
	"go-inventory-dash/internal/store"
)

func newDashboardFixture(t *testing.T) (*store.Store, service.DashboardService) {
	t.Helper()
	st := store.New()
	return st, service.NewDashboardService(st)
}

func TestGetStats(t *testing.T) {
	st, svc := newDashboardFixture(t)

	st.AddSupplier(model.Supplier{Name: "Supplier A", Phone: "0100"})
	st.AddSupplier(model.Supplier{Name: "Supplier B", Phone: "0101"})
	st.AddCustomer(model.Customer{Name: "Customer A", Phone: "0102"})

	st.AddItem(model.Item{Name: "Low", Code: "L", Category: "Test", SupplierID: "s", Stock: 2, ReorderPoint: 5, Price: decimal.NewFromInt(10)})
	st.AddItem(model.Item{Name: "Fine", Code: "F", Category: "Test", SupplierID: "s", Stock: 10, ReorderPoint: 2, Price: decimal.RequireFromString("2.5")})

	stats := svc.GetStats()
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 2, stats.TotalSuppliers)
	assert.Equal(t, 1, stats.TotalCustomers)
	// 2*10 + 10*2.5
	assert.True(t, stats.TotalValuation.Equal(decimal.NewFromInt(45)), "got %s", stats.TotalValuation)
}

func TestGetStockLevels(t *testing.T) {
	st, svc := newDashboardFixture(t)

	st.AddItem(model.Item{Name: "Short", Code: "S", Category: "Test", SupplierID: "s", Stock: 3, ReorderPoint: 1})
	st.AddItem(model.Item{Name: "An Extremely Long Item Name", Code: "X", Category: "Test", SupplierID: "s", Stock: 7, ReorderPoint: 2})

	levels := svc.GetStockLevels()
	require.Len(t, levels, 2)
	assert.Equal(t, "An Extremely...", levels[0].Name, "long names are shortened for the chart")
	assert.Equal(t, 7, levels[0].Stock)
	assert.Equal(t, 2, levels[0].ReorderPoint)
	assert.Equal(t, "Short", levels[1].Name)
}

func TestGetLowStockItems(t *testing.T) {
	st, svc := newDashboardFixture(t)

	low := st.AddItem(model.Item{Name: "Low", Code: "L", Category: "Test", SupplierID: "s", Stock: 5, ReorderPoint: 5})
	st.AddItem(model.Item{Name: "Fine", Code: "F", Category: "Test", SupplierID: "s", Stock: 10, ReorderPoint: 2})

	items := svc.GetLowStockItems()
	require.Len(t, items, 1)
	assert.Equal(t, low.ID, items[0].ID, "at the reorder point counts as low")
}

func TestGetRecentTransactions(t *testing.T) {
	st, svc := newDashboardFixture(t)
	item := st.AddItem(model.Item{Name: "Widget", Code: "W", Category: "Test", SupplierID: "s", Stock: 100})

	var last model.Transaction
	for i := 0; i < 7; i++ {
		last = st.AddTransaction(model.Transaction{ItemID: item.ID, Type: model.TxSale, Quantity: 1, Date: "2024-01-15", RelatedPartyID: "c"})
	}

	recent := svc.GetRecentTransactions(5)
	require.Len(t, recent, 5)
	assert.Equal(t, last.ID, recent[0].ID, "newest first")

	assert.Len(t, svc.GetRecentTransactions(50), 7, "limit above size returns everything")
}
