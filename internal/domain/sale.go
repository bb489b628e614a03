package domain

import "time"

// SaleRecord is a permanent row in the sales table. Rows are append-only and
// immutable; when a race leaves duplicates for the same item, the first row in
// append order is the effective one everywhere.
type SaleRecord struct {
	ItemNumber   int
	BuyerName    string
	BuyerContact string
	SellerName   string
	SoldAt       time.Time
}
