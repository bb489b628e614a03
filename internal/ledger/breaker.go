package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Breaker decorates a Ledger with a circuit breaker so a dead remote store
// fails fast instead of stacking round trips. An open circuit reports
// domain.ErrStoreUnavailable immediately. Calls are never retried; the
// at-most-one-write-per-call contract is preserved.
type Breaker struct {
	next Ledger
	cb   *gobreaker.CircuitBreaker
}

func NewBreaker(next Ledger, logger *zap.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:    "ledger",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("ledger breaker state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *Breaker) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.next.ListSales(ctx)
	})
	if err != nil {
		return nil, b.mapErr("list sales", err)
	}
	return v.([]domain.SaleRecord), nil
}

func (b *Breaker) ListReservations(ctx context.Context) ([]domain.ReservationRecord, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.next.ListReservations(ctx)
	})
	if err != nil {
		return nil, b.mapErr("list reservations", err)
	}
	return v.([]domain.ReservationRecord), nil
}

func (b *Breaker) AppendSale(ctx context.Context, rec domain.SaleRecord) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.next.AppendSale(ctx, rec)
	})
	if err != nil {
		return b.mapErr("append sale", err)
	}
	return nil
}

func (b *Breaker) AppendReservation(ctx context.Context, rec domain.ReservationRecord) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.next.AppendReservation(ctx, rec)
	})
	if err != nil {
		return b.mapErr("append reservation", err)
	}
	return nil
}

func (b *Breaker) DeleteReservation(ctx context.Context, itemNumber int, sellerName string) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.next.DeleteReservation(ctx, itemNumber, sellerName)
	})
	if err != nil {
		return b.mapErr("delete reservation", err)
	}
	return nil
}

func (b *Breaker) mapErr(op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%s: %w: circuit open", op, domain.ErrStoreUnavailable)
	}
	return err
}
