// Package ledger defines access to the shared remote store of record: two
// tabular collections, sales (permanent) and reservations (temporary). The
// store offers no transactions, no unique constraints and no compare-and-swap;
// every invariant is enforced by the callers, and every call is a single
// synchronous round trip.
package ledger

import (
	"context"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Ledger is the uniform read/append/delete contract over both tables. Any
// operation may fail with an error wrapping domain.ErrStoreUnavailable;
// callers must surface that without corrupting derived state.
type Ledger interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
	ListReservations(ctx context.Context) ([]domain.ReservationRecord, error)
	AppendSale(ctx context.Context, rec domain.SaleRecord) error
	AppendReservation(ctx context.Context, rec domain.ReservationRecord) error
	DeleteReservation(ctx context.Context, itemNumber int, sellerName string) error
}
