package service

import (
	"errors"
	"sort"
	"time"

	"go-inventory-dash/internal/model"
	"go-inventory-dash/internal/store"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

var ErrUnknownPeriod = errors.New("unknown report period")

type ReportService interface {
	GetStockCount() []StockCountRow
	GetByCategory() []CategoryGroup
	GetReorderAlerts() []model.Item
	GetItemMovement(itemID string, from, to time.Time) []MovementRow
	GetSupplierAccount(supplierID string) []AccountRow
	GetCustomerAccount(customerID string) []AccountRow
	GetCogs(period Period) (*CogsReport, error)
}

type StockCountRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Stock int    `json:"stock"`
	Unit  string `json:"unit"`
}

type CategoryGroup struct {
	Category string       `json:"category"`
	Items    []model.Item `json:"items"`
}

// MovementRow is one transaction of an item with its related party resolved.
type MovementRow struct {
	model.Transaction
	PartyName string `json:"party_name"`
}

// AccountRow is one transaction on a supplier or customer statement.
type AccountRow struct {
	model.Transaction
	ItemName string `json:"item_name"`
}

type CogsRow struct {
	model.Transaction
	ItemName string          `json:"item_name"`
	Cost     decimal.Decimal `json:"cost"`
}

type CogsReport struct {
	Period    Period          `json:"period"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Rows      []CogsRow       `json:"rows"`
}

type reportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) ReportService {
	return &reportService{store: st}
}

func (s *reportService) GetStockCount() []StockCountRow {
	items := s.store.Items()
	rows := make([]StockCountRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, StockCountRow{ID: it.ID, Name: it.Name, Code: it.Code, Stock: it.Stock, Unit: it.Unit})
	}
	return rows
}

func (s *reportService) GetByCategory() []CategoryGroup {
	grouped := map[string][]model.Item{}
	var order []string
	for _, it := range s.store.Items() {
		category := it.Category
		if category == "" {
			category = "Uncategorized"
		}
		if _, seen := grouped[category]; !seen {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], it)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, CategoryGroup{Category: category, Items: grouped[category]})
	}
	return groups
}

func (s *reportService) GetReorderAlerts() []model.Item {
	var alerts []model.Item
	for _, it := range s.store.Items() {
		if it.Stock <= it.ReorderPoint {
			alerts = append(alerts, it)
		}
	}
	return alerts
}

// GetItemMovement lists one item's transactions, optionally bounded by an
// inclusive date range. Zero times mean unbounded.
func (s *reportService) GetItemMovement(itemID string, from, to time.Time) []MovementRow {
	var rows []MovementRow
	for _, tx := range s.store.Transactions() {
		if tx.ItemID != itemID {
			continue
		}
		date, err := time.Parse(model.DateLayout, tx.Date)
		if err != nil {
			continue
		}
		if !from.IsZero() && date.Before(from) {
			continue
		}
		if !to.IsZero() && date.After(to) {
			continue
		}
		rows = append(rows, MovementRow{Transaction: tx, PartyName: s.partyName(tx)})
	}
	sortByDateDesc(rows, func(r MovementRow) string { return r.Date })
	return rows
}

// partyName resolves the related party for display. Dangling references
// resolve to empty, the same as internal transfers.
func (s *reportService) partyName(tx model.Transaction) string {
	switch {
	case tx.Type.IsPurchaseFamily():
		if sup, ok := s.store.SupplierByID(tx.RelatedPartyID); ok {
			return sup.Name
		}
	case tx.Type.IsSaleFamily():
		if cust, ok := s.store.CustomerByID(tx.RelatedPartyID); ok {
			return cust.Name
		}
	}
	return ""
}

func (s *reportService) GetSupplierAccount(supplierID string) []AccountRow {
	return s.accountRows(supplierID, func(t model.TransactionType) bool { return t.IsPurchaseFamily() })
}

func (s *reportService) GetCustomerAccount(customerID string) []AccountRow {
	return s.accountRows(customerID, func(t model.TransactionType) bool { return t.IsSaleFamily() })
}

func (s *reportService) accountRows(partyID string, match func(model.TransactionType) bool) []AccountRow {
	var rows []AccountRow
	for _, tx := range s.store.Transactions() {
		if tx.RelatedPartyID != partyID || !match(tx.Type) {
			continue
		}
		row := AccountRow{Transaction: tx}
		if it, ok := s.store.ItemByID(tx.ItemID); ok {
			row.ItemName = it.Name
		}
		rows = append(rows, row)
	}
	sortByDateDesc(rows, func(r AccountRow) string { return r.Date })
	return rows
}

// GetCogs sums the cost of goods sold over the current week, month, or
// year. Cost is the item's current price times quantity; sales of deleted
// items count as zero.
func (s *reportService) GetCogs(period Period) (*CogsReport, error) {
	start, err := periodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	report := &CogsReport{Period: period, TotalCost: decimal.Zero}
	for _, tx := range s.store.Transactions() {
		if tx.Type != model.TxSale {
			continue
		}
		date, err := time.Parse(model.DateLayout, tx.Date)
		if err != nil || date.Before(start) {
			continue
		}
		row := CogsRow{Transaction: tx, Cost: decimal.Zero}
		if it, ok := s.store.ItemByID(tx.ItemID); ok {
			row.ItemName = it.Name
			row.Cost = it.Price.Mul(decimal.NewFromInt(int64(tx.Quantity)))
		}
		report.TotalCost = report.TotalCost.Add(row.Cost)
		report.Rows = append(report.Rows, row)
	}
	sortByDateDesc(report.Rows, func(r CogsRow) string { return r.Date })
	return report, nil
}

// periodStart returns midnight at the start of the current week (Sunday),
// month, or year.
func periodStart(period Period, now time.Time) (time.Time, error) {
	switch period {
	case PeriodWeek:
		day := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location()), nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), nil
	}
	return time.Time{}, ErrUnknownPeriod
}

// sortByDateDesc keeps insertion order for equal dates, so same-day rows
// stay most-recent-first.
func sortByDateDesc[T any](rows []T, date func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return date(rows[i]) > date(rows[j])
	})
}
