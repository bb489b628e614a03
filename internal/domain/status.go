package domain

import "time"

type ItemState string

const (
	StateAvailable ItemState = "available"
	StateReserved  ItemState = "reserved"
	StateSold      ItemState = "sold"
)

// Status is the derived per-item state. It is computed from a ledger snapshot
// and never persisted; a sale always dominates any reservation rows.
type Status struct {
	State ItemState

	// Reserved variant.
	SellerName string
	ReservedAt time.Time
	ExpiresAt  time.Time

	// Sold variant. SellerName doubles as the selling seller.
	BuyerName    string
	BuyerContact string
	SoldAt       time.Time
}

func Available() Status {
	return Status{State: StateAvailable}
}

func ReservedBy(r ReservationRecord) Status {
	return Status{
		State:      StateReserved,
		SellerName: r.SellerName,
		ReservedAt: r.ReservedAt,
		ExpiresAt:  r.ExpiresAt(),
	}
}

func SoldTo(s SaleRecord) Status {
	return Status{
		State:        StateSold,
		SellerName:   s.SellerName,
		BuyerName:    s.BuyerName,
		BuyerContact: s.BuyerContact,
		SoldAt:       s.SoldAt,
	}
}
