// Package postgres backs the ledger tables with a Postgres database used the
// way the remote tabular store behaves: append-order rows, no unique
// constraints, no foreign keys, and no multi-statement transactions. A pos
// sequence column preserves append order so "first record wins" resolves the
// same for every reader.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	const query = `
SELECT item_number, buyer_name, buyer_contact, seller_name, sold_at
FROM sales
ORDER BY pos`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list sales", err)
	}
	defer rows.Close()

	var sales []domain.SaleRecord
	for rows.Next() {
		var rec domain.SaleRecord
		if err := rows.Scan(&rec.ItemNumber, &rec.BuyerName, &rec.BuyerContact, &rec.SellerName, &rec.SoldAt); err != nil {
			return nil, storeErr("scan sale", err)
		}
		sales = append(sales, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list sales", err)
	}
	return sales, nil
}

func (s *Store) ListReservations(ctx context.Context) ([]domain.ReservationRecord, error) {
	const query = `
SELECT item_number, seller_name, reserved_at
FROM reservations
ORDER BY pos`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, storeErr("list reservations", err)
	}
	defer rows.Close()

	var reservations []domain.ReservationRecord
	for rows.Next() {
		var rec domain.ReservationRecord
		if err := rows.Scan(&rec.ItemNumber, &rec.SellerName, &rec.ReservedAt); err != nil {
			return nil, storeErr("scan reservation", err)
		}
		reservations = append(reservations, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list reservations", err)
	}
	return reservations, nil
}

func (s *Store) AppendSale(ctx context.Context, rec domain.SaleRecord) error {
	const stmt = `
INSERT INTO sales (item_number, buyer_name, buyer_contact, seller_name, sold_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := s.pool.Exec(ctx, stmt,
		rec.ItemNumber,
		rec.BuyerName,
		rec.BuyerContact,
		rec.SellerName,
		rec.SoldAt,
	)
	if err != nil {
		return storeErr("append sale", err)
	}
	return nil
}

func (s *Store) AppendReservation(ctx context.Context, rec domain.ReservationRecord) error {
	const stmt = `
INSERT INTO reservations (item_number, seller_name, reserved_at)
VALUES ($1, $2, $3)`

	_, err := s.pool.Exec(ctx, stmt, rec.ItemNumber, rec.SellerName, rec.ReservedAt)
	if err != nil {
		return storeErr("append reservation", err)
	}
	return nil
}

func (s *Store) DeleteReservation(ctx context.Context, itemNumber int, sellerName string) error {
	const stmt = `DELETE FROM reservations WHERE item_number = $1 AND seller_name = $2`

	if _, err := s.pool.Exec(ctx, stmt, itemNumber, sellerName); err != nil {
		return storeErr("delete reservation", err)
	}
	return nil
}

// storeErr folds any driver failure into the transient taxonomy: callers only
// ever see domain.ErrStoreUnavailable for this layer.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
