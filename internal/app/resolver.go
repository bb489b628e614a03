package app

import (
	"time"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Snapshot is one full read of both ledger tables, taken in the same poll
// cycle. Resolution is a pure function of a snapshot and an instant; two
// sellers polling at different times converge once both instants pass any
// relevant expiry boundary.
type Snapshot struct {
	Sales        []domain.SaleRecord
	Reservations []domain.ReservationRecord
}

// Board maps every item number in [1..total] to its resolved status.
type Board map[int]domain.Status

// Resolve derives the per-item status from a snapshot:
//
//  1. A sale always wins, and the first sale row in append order is the
//     effective one when a lost race left duplicates.
//  2. Among live reservations for an unsold item, the earliest ReservedAt
//     wins; ties fall to the lexicographically smaller seller name.
//  3. Everything else is available.
//
// Expired reservation rows are treated as absent even before a sweep removes
// them.
func Resolve(snap Snapshot, now time.Time, total int) Board {
	sold := make(map[int]domain.SaleRecord)
	for _, rec := range snap.Sales {
		if rec.ItemNumber < 1 || rec.ItemNumber > total {
			continue
		}
		if _, ok := sold[rec.ItemNumber]; !ok {
			sold[rec.ItemNumber] = rec
		}
	}

	winners := make(map[int]domain.ReservationRecord)
	for _, rec := range snap.Reservations {
		if rec.ItemNumber < 1 || rec.ItemNumber > total {
			continue
		}
		if !rec.Live(now) {
			continue
		}
		if _, isSold := sold[rec.ItemNumber]; isSold {
			continue
		}
		if cur, ok := winners[rec.ItemNumber]; !ok || rec.Beats(cur) {
			winners[rec.ItemNumber] = rec
		}
	}

	board := make(Board, total)
	for n := 1; n <= total; n++ {
		if rec, ok := sold[n]; ok {
			board[n] = domain.SoldTo(rec)
			continue
		}
		if rec, ok := winners[n]; ok {
			board[n] = domain.ReservedBy(rec)
			continue
		}
		board[n] = domain.Available()
	}
	return board
}
