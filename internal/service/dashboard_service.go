package service

import (
	"go-inventory-dash/internal/model"
	"go-inventory-dash/internal/store"

	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetStats() *DashboardStats
	GetStockLevels() []StockLevel
	GetLowStockItems() []model.Item
	GetRecentTransactions(limit int) []model.Transaction
}

// DashboardStats backs the overview cards.
type DashboardStats struct {
	TotalItems     int             `json:"total_items"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalSuppliers int             `json:"total_suppliers"`
	TotalCustomers int             `json:"total_customers"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// StockLevel is one row of the stock-level chart.
type StockLevel struct {
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

func (s *dashboardService) GetStats() *DashboardStats {
	items := s.store.Items()

	stats := &DashboardStats{
		TotalItems:     len(items),
		TotalSuppliers: len(s.store.Suppliers()),
		TotalCustomers: len(s.store.Customers()),
		TotalValuation: decimal.Zero,
	}
	for _, it := range items {
		if it.Stock <= it.ReorderPoint {
			stats.LowStockCount++
		}
		stats.TotalValuation = stats.TotalValuation.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Stock))))
	}
	return stats
}

func (s *dashboardService) GetStockLevels() []StockLevel {
	items := s.store.Items()
	levels := make([]StockLevel, 0, len(items))
	for _, it := range items {
		levels = append(levels, StockLevel{
			Name:         chartLabel(it.Name),
			Stock:        it.Stock,
			ReorderPoint: it.ReorderPoint,
		})
	}
	return levels
}

// chartLabel shortens long item names so chart axes stay readable.
func chartLabel(name string) string {
	runes := []rune(name)
	if len(runes) <= 15 {
		return name
	}
	return string(runes[:12]) + "..."
}

func (s *dashboardService) GetLowStockItems() []model.Item {
	var low []model.Item
	for _, it := range s.store.Items() {
		if it.Stock <= it.ReorderPoint {
			low = append(low, it)
		}
	}
	return low
}

func (s *dashboardService) GetRecentTransactions(limit int) []model.Transaction {
	txs := s.store.Transactions()
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	return txs
}
