package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/alemeds/rifa-multivendedor/internal/clock"
	"github.com/alemeds/rifa-multivendedor/internal/domain"
	"github.com/alemeds/rifa-multivendedor/internal/ledger"
)

// EngineService drives the reservation/sale state machine:
//
//	Available -> Reserved(seller) -> Sold
//	Reserved(seller) -> Available   (cancel or expiry)
//
// Sold is terminal. The store gives no atomicity across calls, so every
// operation re-resolves current state immediately before writing
// (read-validate-write), and Confirm re-checks the sales table once more right
// before its append as the anti-oversell guard.
type EngineService struct {
	ledger ledger.Ledger
	clock  clock.Clock
	logger *zap.Logger
	total  int
}

func NewEngineService(led ledger.Ledger, clk clock.Clock, logger *zap.Logger, total int) *EngineService {
	return &EngineService{
		ledger: led,
		clock:  clk,
		logger: logger,
		total:  total,
	}
}

func (s *EngineService) validateItem(itemNumber int) error {
	if itemNumber < 1 || itemNumber > s.total {
		return domain.ErrInvalidItemNumber
	}
	return nil
}

func (s *EngineService) snapshot(ctx context.Context) (Snapshot, error) {
	sales, err := s.ledger.ListSales(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	reservations, err := s.ledger.ListReservations(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Sales: sales, Reservations: reservations}, nil
}

// Reserve appends a reservation for an available item. Exclusivity is not
// guaranteed at the store: when two sellers race inside the visibility window
// both rows land, and the resolver tie-break picks the one winner every reader
// agrees on. The loser's row sits inert until it expires or is swept.
func (s *EngineService) Reserve(ctx context.Context, itemNumber int, sellerName string) (domain.ReservationRecord, error) {
	if err := s.validateItem(itemNumber); err != nil {
		return domain.ReservationRecord{}, err
	}
	if sellerName == "" {
		return domain.ReservationRecord{}, domain.ErrSellerNameRequired
	}

	now := s.clock.Now()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.ReservationRecord{}, err
	}

	switch status := Resolve(snap, now, s.total)[itemNumber]; status.State {
	case domain.StateSold:
		return domain.ReservationRecord{}, domain.ErrAlreadySold
	case domain.StateReserved:
		return domain.ReservationRecord{}, domain.ErrAlreadyReserved
	}

	rec := domain.ReservationRecord{
		ItemNumber: itemNumber,
		SellerName: sellerName,
		ReservedAt: now,
	}
	if err := s.ledger.AppendReservation(ctx, rec); err != nil {
		return domain.ReservationRecord{}, err
	}
	return rec, nil
}

type ConfirmInput struct {
	ItemNumber   int
	SellerName   string
	BuyerName    string
	BuyerContact string
}

// Confirm promotes the caller's reservation into a permanent sale. Only the
// seller the resolver crowns as holder may confirm. A fresh read of the sales
// table right before the append aborts the write if another confirm landed
// first; that re-check is the primary defense against overselling.
func (s *EngineService) Confirm(ctx context.Context, in ConfirmInput) (domain.SaleRecord, error) {
	if err := s.validateItem(in.ItemNumber); err != nil {
		return domain.SaleRecord{}, err
	}
	if in.SellerName == "" {
		return domain.SaleRecord{}, domain.ErrSellerNameRequired
	}
	if in.BuyerName == "" {
		return domain.SaleRecord{}, domain.ErrBuyerNameRequired
	}

	now := s.clock.Now()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.SaleRecord{}, err
	}

	status := Resolve(snap, now, s.total)[in.ItemNumber]
	switch status.State {
	case domain.StateAvailable:
		return domain.SaleRecord{}, domain.ErrNotReserved
	case domain.StateSold:
		return domain.SaleRecord{}, domain.ErrAlreadySold
	}
	if status.SellerName != in.SellerName {
		return domain.SaleRecord{}, domain.ErrNotYourReservation
	}

	// Freshness guard: another seller's confirm may have landed since the
	// snapshot above.
	sales, err := s.ledger.ListSales(ctx)
	if err != nil {
		return domain.SaleRecord{}, err
	}
	for _, sale := range sales {
		if sale.ItemNumber == in.ItemNumber {
			return domain.SaleRecord{}, domain.ErrAlreadySold
		}
	}

	sale := domain.SaleRecord{
		ItemNumber:   in.ItemNumber,
		BuyerName:    in.BuyerName,
		BuyerContact: in.BuyerContact,
		SellerName:   in.SellerName,
		SoldAt:       now,
	}
	if err := s.ledger.AppendSale(ctx, sale); err != nil {
		return domain.SaleRecord{}, err
	}

	// The sale row already dominates any reservation, so a failed cleanup
	// leaves a harmless stray the next sweep removes.
	if err := s.ledger.DeleteReservation(ctx, in.ItemNumber, in.SellerName); err != nil {
		s.logger.Warn("reservation cleanup failed after sale append",
			zap.Int("item", in.ItemNumber),
			zap.String("seller", in.SellerName),
			zap.Error(err),
		)
	}
	return sale, nil
}

// Cancel removes the caller's own reservation. Cancelling a reservation that
// is already gone or expired is a no-op; touching another seller's live
// reservation is refused without mutating anything.
func (s *EngineService) Cancel(ctx context.Context, itemNumber int, sellerName string) error {
	if err := s.validateItem(itemNumber); err != nil {
		return err
	}
	if sellerName == "" {
		return domain.ErrSellerNameRequired
	}

	reservations, err := s.ledger.ListReservations(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	ownRecord := false
	var liveOther bool
	for _, rec := range reservations {
		if rec.ItemNumber != itemNumber {
			continue
		}
		if rec.SellerName == sellerName {
			ownRecord = true
		} else if rec.Live(now) {
			liveOther = true
		}
	}

	if ownRecord {
		return s.ledger.DeleteReservation(ctx, itemNumber, sellerName)
	}
	if liveOther {
		return domain.ErrNotYourReservation
	}
	return nil
}

// SweepExpired deletes every reservation row past its TTL, regardless of who
// created it. Correctness never depends on it (expired rows are already
// ignored on read); it reclaims ledger space and keeps stale rows from
// muddying duplicate detection. Safe from any client at any time.
//
// Deletion is keyed by (item, seller) and removes every row under the key, so
// a key that also carries a live row must be skipped: a seller who re-reserved
// an item after their earlier reservation expired unswept would otherwise lose
// the live reservation along with the stale one. The stale row goes once the
// live one is confirmed, cancelled, or expires in turn.
func (s *EngineService) SweepExpired(ctx context.Context) (int, error) {
	reservations, err := s.ledger.ListReservations(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	type key struct {
		item   int
		seller string
	}
	live := make(map[key]struct{})
	for _, rec := range reservations {
		if rec.Live(now) {
			live[key{item: rec.ItemNumber, seller: rec.SellerName}] = struct{}{}
		}
	}

	seen := make(map[key]struct{})
	swept := 0
	for _, rec := range reservations {
		if rec.Live(now) {
			continue
		}
		k := key{item: rec.ItemNumber, seller: rec.SellerName}
		if _, holds := live[k]; holds {
			continue
		}
		if _, done := seen[k]; done {
			continue
		}
		seen[k] = struct{}{}
		if err := s.ledger.DeleteReservation(ctx, rec.ItemNumber, rec.SellerName); err != nil {
			return swept, err
		}
		swept++
	}
	return swept, nil
}
