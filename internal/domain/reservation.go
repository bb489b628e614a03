package domain

import "time"

// ReservationTTL is how long a reservation blocks an item. Fixed: there is no
// renewal and no per-seller extension.
const ReservationTTL = 5 * time.Minute

// ReservationRecord is a temporary row in the reservations table. It is
// removed on confirm, on cancel by its own seller, or by an expiry sweep run
// from any client.
type ReservationRecord struct {
	ItemNumber int
	SellerName string
	ReservedAt time.Time
}

// ExpiresAt is derived from ReservedAt; it is never stored.
func (r ReservationRecord) ExpiresAt() time.Time {
	return r.ReservedAt.Add(ReservationTTL)
}

// Live reports whether the reservation still blocks the item at the given
// instant. Expiry is evaluated lazily on read; a record is logically dead the
// moment its TTL elapses, even before any sweep deletes it.
func (r ReservationRecord) Live(now time.Time) bool {
	return now.Sub(r.ReservedAt) < ReservationTTL
}

// Beats reports whether r wins over other when both hold live reservations
// for the same item: earliest ReservedAt first, ties broken by the
// lexicographically smaller seller name so every reader converges on the same
// winner regardless of read order.
func (r ReservationRecord) Beats(other ReservationRecord) bool {
	if !r.ReservedAt.Equal(other.ReservedAt) {
		return r.ReservedAt.Before(other.ReservedAt)
	}
	return r.SellerName < other.SellerName
}
