// Package memory holds the ledger tables in process memory. It preserves
// append order like the remote store and supports fault injection, which makes
// it the backing store for unit tests and local demos.
package memory

import (
	"context"
	"sync"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

type Store struct {
	mu           sync.Mutex
	sales        []domain.SaleRecord
	reservations []domain.ReservationRecord

	failAll    error
	failDelete error
}

func NewStore() *Store {
	return &Store{}
}

// FailWith makes every operation return err until cleared with nil.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAll = err
}

// FailDeletesWith makes only DeleteReservation return err until cleared.
func (s *Store) FailDeletesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failDelete = err
}

func (s *Store) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	out := make([]domain.SaleRecord, len(s.sales))
	copy(out, s.sales)
	return out, nil
}

func (s *Store) ListReservations(ctx context.Context) ([]domain.ReservationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	out := make([]domain.ReservationRecord, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

func (s *Store) AppendSale(ctx context.Context, rec domain.SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	s.sales = append(s.sales, rec)
	return nil
}

func (s *Store) AppendReservation(ctx context.Context, rec domain.ReservationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	s.reservations = append(s.reservations, rec)
	return nil
}

func (s *Store) DeleteReservation(ctx context.Context, itemNumber int, sellerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	if s.failDelete != nil {
		return s.failDelete
	}
	kept := s.reservations[:0]
	for _, rec := range s.reservations {
		if rec.ItemNumber == itemNumber && rec.SellerName == sellerName {
			continue
		}
		kept = append(kept, rec)
	}
	s.reservations = kept
	return nil
}

// SaleCount reports how many sale rows exist for an item, duplicates included.
func (s *Store) SaleCount(itemNumber int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.sales {
		if rec.ItemNumber == itemNumber {
			n++
		}
	}
	return n
}

// ReservationCount reports how many reservation rows exist for an item.
func (s *Store) ReservationCount(itemNumber int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.reservations {
		if rec.ItemNumber == itemNumber {
			n++
		}
	}
	return n
}
