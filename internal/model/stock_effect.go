package model

// StockDelta maps a transaction of this type to its signed effect on the
// item's stock. Purchases and sale returns bring goods in, sales and
// purchase returns move goods out, internal transfers never change the
// single-location total.
func (t TransactionType) StockDelta(quantity int) int {
	switch t {
	case TxPurchase, TxSaleReturn:
		return quantity
	case TxSale, TxPurchaseReturn:
		return -quantity
	}
	return 0
}

// ApplyStockDelta adds delta to stock, flooring at zero. A movement larger
// than the on-hand quantity is absorbed, not rejected.
func ApplyStockDelta(stock, delta int) int {
	if next := stock + delta; next > 0 {
		return next
	}
	return 0
}
