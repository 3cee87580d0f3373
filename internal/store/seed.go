package store

import (
	"go-inventory-dash/internal/model"

	"github.com/shopspring/decimal"
)

// NewSeeded builds a store preloaded with the fixed startup dataset. The
// seeded transactions are history only: item stock levels below are the
// current truth and are not re-derived from them.
func NewSeeded() *Store {
	s := New()

	sup1 := model.Supplier{ID: newID(), Name: "Modern Hardware Co.", Phone: "01012345678", Address: "123 Technology St, Cairo", TaxID: "123-456-789"}
	sup2 := model.Supplier{ID: newID(), Name: "Samsung Egypt Group", Phone: "01198765432", Address: "456 Tahrir Square, Cairo", TaxID: "987-654-321"}
	sup3 := model.Supplier{ID: newID(), Name: "United Suppliers", Phone: "01234567890", Address: "789 Nile St, Giza", TaxID: "456-789-123"}
	s.suppliers = []model.Supplier{sup1, sup2, sup3}

	cust1 := model.Customer{ID: newID(), Name: "First Trading Customer", Phone: "01511122233", Address: "1 Khalifa El-Maamoun St, Heliopolis"}
	cust2 := model.Customer{ID: newID(), Name: "Al Nour Engineering", Phone: "01099887766", Address: "55 Abbas El-Akkad St, Nasr City"}
	s.customers = []model.Customer{cust1, cust2}

	it1 := model.Item{ID: newID(), Name: "Dell G15 Laptop", Code: "LP-DEL-G15", Barcode: "8991234567890", Unit: "pc", Category: "Electronics", SupplierID: sup1.ID, Stock: 15, ReorderPoint: 5, Price: decimal.NewFromInt(25500), ImageURL: "https://picsum.photos/400/300?random=1"}
	it2 := model.Item{ID: newID(), Name: "Samsung 27\" Monitor", Code: "MN-SAM-27", Barcode: "8991234567891", Unit: "pc", Category: "Electronics", SupplierID: sup2.ID, Stock: 8, ReorderPoint: 3, Price: decimal.NewFromInt(4200), ImageURL: "https://picsum.photos/400/300?random=2"}
	it3 := model.Item{ID: newID(), Name: "HP Laser Printer", Code: "PR-HP-LSR", Barcode: "8991234567892", Unit: "pc", Category: "Office Equipment", SupplierID: sup1.ID, Stock: 25, ReorderPoint: 10, Price: decimal.NewFromInt(3850), ImageURL: "https://picsum.photos/400/300?random=3"}
	it4 := model.Item{ID: newID(), Name: "A4 Copy Paper", Code: "PP-A4", Barcode: "8991234567893", Unit: "ream", Category: "Office Supplies", SupplierID: sup3.ID, Stock: 150, ReorderPoint: 50, Price: decimal.NewFromInt(85), ImageURL: "https://picsum.photos/400/300?random=4"}
	s.items = []model.Item{it1, it2, it3, it4}

	s.transactions = []model.Transaction{
		{ID: newID(), ItemID: it4.ID, Type: model.TxSale, Quantity: 20, Date: "2023-10-10", RelatedPartyID: cust2.ID},
		{ID: newID(), ItemID: it1.ID, Type: model.TxSale, Quantity: 2, Date: "2023-10-05", RelatedPartyID: cust1.ID},
		{ID: newID(), ItemID: it2.ID, Type: model.TxPurchase, Quantity: 5, Date: "2023-10-02", RelatedPartyID: sup2.ID},
		{ID: newID(), ItemID: it1.ID, Type: model.TxPurchase, Quantity: 10, Date: "2023-10-01", RelatedPartyID: sup1.ID},
	}

	return s
}
