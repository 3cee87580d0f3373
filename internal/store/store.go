package store

import (
	"fmt"
	"sync"

	"go-inventory-dash/internal/model"

	"github.com/google/uuid"
)

// Event describes one completed mutation. Subscribers typically push it to
// connected dashboard clients so they can re-read the collections.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Store owns the four in-memory collections for the lifetime of the process.
// It is constructed once at startup (usually via NewSeeded) and threaded
// explicitly to every consumer; there is no package-level instance.
//
// The store does not validate business rules. Callers are expected to build
// entities through the model constructors before mutating. Referential gaps
// (unknown ids) are tolerated: updates and deletes of unknown records are
// silent no-ops, and a transaction against an unknown item is recorded
// without a stock effect.
type Store struct {
	mu           sync.RWMutex
	items        []model.Item
	suppliers    []model.Supplier
	customers    []model.Customer
	transactions []model.Transaction

	subMu       sync.Mutex
	subscribers []func(Event)
}

func New() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every successful mutation.
// Callbacks run synchronously on the mutating goroutine, outside the store
// lock, so a subscriber may read the store again.
func (s *Store) Subscribe(fn func(Event)) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *Store) publish(e Event) {
	s.subMu.Lock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(e)
	}
}

func newID() string {
	return uuid.NewString()
}

// ---------- Items ----------

// AddItem inserts the item with a fresh id, most-recent-first. Items created
// without an image get a placeholder so the dashboard cards always render.
func (s *Store) AddItem(item model.Item) model.Item {
	s.mu.Lock()
	item.ID = newID()
	if item.ImageURL == "" {
		item.ImageURL = fmt.Sprintf("https://picsum.photos/400/300?random=%d", len(s.items)+5)
	}
	s.items = append([]model.Item{item}, s.items...)
	s.mu.Unlock()

	s.publish(Event{Entity: "item", Action: "created", ID: item.ID})
	return item
}

// UpdateItem replaces the record with a matching id in place. Unknown ids
// are ignored and nothing is published.
func (s *Store) UpdateItem(item model.Item) {
	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.publish(Event{Entity: "item", Action: "updated", ID: item.ID})
	}
}

// DeleteItem hard-deletes the item. No cascade: transactions referencing the
// item stay as they are.
func (s *Store) DeleteItem(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.publish(Event{Entity: "item", Action: "deleted", ID: id})
	}
}

func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) ItemByID(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// ---------- Suppliers ----------

func (s *Store) AddSupplier(sup model.Supplier) model.Supplier {
	s.mu.Lock()
	sup.ID = newID()
	s.suppliers = append([]model.Supplier{sup}, s.suppliers...)
	s.mu.Unlock()

	s.publish(Event{Entity: "supplier", Action: "created", ID: sup.ID})
	return sup
}

func (s *Store) UpdateSupplier(sup model.Supplier) {
	s.mu.Lock()
	replaced := false
	for i := range s.suppliers {
		if s.suppliers[i].ID == sup.ID {
			s.suppliers[i] = sup
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.publish(Event{Entity: "supplier", Action: "updated", ID: sup.ID})
	}
}

func (s *Store) DeleteSupplier(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.publish(Event{Entity: "supplier", Action: "deleted", ID: id})
	}
}

func (s *Store) Suppliers() []model.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

func (s *Store) SupplierByID(id string) (model.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return model.Supplier{}, false
}

// ---------- Customers ----------

func (s *Store) AddCustomer(cust model.Customer) model.Customer {
	s.mu.Lock()
	cust.ID = newID()
	s.customers = append([]model.Customer{cust}, s.customers...)
	s.mu.Unlock()

	s.publish(Event{Entity: "customer", Action: "created", ID: cust.ID})
	return cust
}

func (s *Store) UpdateCustomer(cust model.Customer) {
	s.mu.Lock()
	replaced := false
	for i := range s.customers {
		if s.customers[i].ID == cust.ID {
			s.customers[i] = cust
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	if replaced {
		s.publish(Event{Entity: "customer", Action: "updated", ID: cust.ID})
	}
}

func (s *Store) DeleteCustomer(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.publish(Event{Entity: "customer", Action: "deleted", ID: id})
	}
}

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *Store) CustomerByID(id string) (model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

// ---------- Transactions ----------

// AddTransaction records the transaction most-recent-first and applies its
// stock effect to the referenced item, floored at zero. When the item does
// not exist the transaction is still recorded and stock is left alone.
func (s *Store) AddTransaction(tx model.Transaction) model.Transaction {
	s.mu.Lock()
	tx.ID = newID()
	s.transactions = append([]model.Transaction{tx}, s.transactions...)

	delta := tx.Type.StockDelta(tx.Quantity)
	for i := range s.items {
		if s.items[i].ID == tx.ItemID {
			s.items[i].Stock = model.ApplyStockDelta(s.items[i].Stock, delta)
			break
		}
	}
	s.mu.Unlock()

	s.publish(Event{Entity: "transaction", Action: "created", ID: tx.ID})
	return tx
}

func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) TransactionByID(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}
