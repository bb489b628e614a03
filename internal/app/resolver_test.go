package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const total = 10

	t.Run("empty snapshot leaves everything available", func(t *testing.T) {
		board := Resolve(Snapshot{}, now, total)

		require.Len(t, board, total)
		for n := 1; n <= total; n++ {
			assert.Equal(t, domain.StateAvailable, board[n].State)
		}
	})

	t.Run("sale dominates any reservation", func(t *testing.T) {
		snap := Snapshot{
			Sales: []domain.SaleRecord{
				{ItemNumber: 7, BuyerName: "Luis", SellerName: "Ana", SoldAt: now},
			},
			Reservations: []domain.ReservationRecord{
				{ItemNumber: 7, SellerName: "Beto", ReservedAt: now},
			},
		}

		board := Resolve(snap, now, total)
		require.Equal(t, domain.StateSold, board[7].State)
		assert.Equal(t, "Luis", board[7].BuyerName)
		assert.Equal(t, "Ana", board[7].SellerName)
	})

	t.Run("first sale row wins when a race left duplicates", func(t *testing.T) {
		snap := Snapshot{
			Sales: []domain.SaleRecord{
				{ItemNumber: 4, BuyerName: "First", SellerName: "Ana", SoldAt: now},
				{ItemNumber: 4, BuyerName: "Second", SellerName: "Beto", SoldAt: now.Add(time.Second)},
			},
		}

		board := Resolve(snap, now, total)
		require.Equal(t, domain.StateSold, board[4].State)
		assert.Equal(t, "First", board[4].BuyerName)
	})

	t.Run("live reservation shows reserved with computed expiry", func(t *testing.T) {
		reservedAt := now.Add(-time.Minute)
		snap := Snapshot{
			Reservations: []domain.ReservationRecord{
				{ItemNumber: 2, SellerName: "Ana", ReservedAt: reservedAt},
			},
		}

		board := Resolve(snap, now, total)
		require.Equal(t, domain.StateReserved, board[2].State)
		assert.Equal(t, "Ana", board[2].SellerName)
		assert.Equal(t, reservedAt.Add(5*time.Minute), board[2].ExpiresAt)
	})

	t.Run("expired reservations are treated as absent", func(t *testing.T) {
		snap := Snapshot{
			Reservations: []domain.ReservationRecord{
				{ItemNumber: 5, SellerName: "Ana", ReservedAt: now.Add(-6 * time.Minute)},
			},
		}

		board := Resolve(snap, now, total)
		assert.Equal(t, domain.StateAvailable, board[5].State)
	})

	t.Run("earliest reservation wins independent of read order", func(t *testing.T) {
		ana := domain.ReservationRecord{ItemNumber: 3, SellerName: "Ana", ReservedAt: now.Add(-2 * time.Second)}
		beto := domain.ReservationRecord{ItemNumber: 3, SellerName: "Beto", ReservedAt: now.Add(-1 * time.Second)}

		for name, recs := range map[string][]domain.ReservationRecord{
			"ana first":  {ana, beto},
			"beto first": {beto, ana},
		} {
			board := Resolve(Snapshot{Reservations: recs}, now, total)
			require.Equal(t, domain.StateReserved, board[3].State, name)
			assert.Equal(t, "Ana", board[3].SellerName, name)
		}
	})

	t.Run("timestamp tie breaks on lexicographic seller name", func(t *testing.T) {
		at := now.Add(-time.Second)
		snap := Snapshot{
			Reservations: []domain.ReservationRecord{
				{ItemNumber: 9, SellerName: "Zoe", ReservedAt: at},
				{ItemNumber: 9, SellerName: "Ana", ReservedAt: at},
			},
		}

		board := Resolve(snap, now, total)
		require.Equal(t, domain.StateReserved, board[9].State)
		assert.Equal(t, "Ana", board[9].SellerName)
	})

	t.Run("rows outside the item range are ignored", func(t *testing.T) {
		snap := Snapshot{
			Sales: []domain.SaleRecord{
				{ItemNumber: 0, BuyerName: "X", SellerName: "A", SoldAt: now},
				{ItemNumber: total + 1, BuyerName: "Y", SellerName: "B", SoldAt: now},
			},
			Reservations: []domain.ReservationRecord{
				{ItemNumber: -3, SellerName: "Ana", ReservedAt: now},
			},
		}

		board := Resolve(snap, now, total)
		for n := 1; n <= total; n++ {
			assert.Equal(t, domain.StateAvailable, board[n].State)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	const total = 10

	snap := Snapshot{
		Sales: []domain.SaleRecord{
			{ItemNumber: 1, BuyerName: "Luis", SellerName: "Ana", SoldAt: now},
			{ItemNumber: 2, BuyerName: "Mara", SellerName: "Ana", SoldAt: now},
			{ItemNumber: 3, BuyerName: "Nico", SellerName: "Beto", SoldAt: now},
		},
		Reservations: []domain.ReservationRecord{
			{ItemNumber: 4, SellerName: "Ana", ReservedAt: now.Add(-time.Minute)},
			{ItemNumber: 5, SellerName: "Cami", ReservedAt: now.Add(-10 * time.Minute)}, // expired
		},
	}

	sum := Summarize(Resolve(snap, now, total), total)

	assert.Equal(t, 3, sum.Sold)
	assert.Equal(t, 1, sum.Reserved)
	assert.Equal(t, 6, sum.Available)
	assert.InDelta(t, 0.3, sum.Progress, 1e-9)
	assert.Equal(t, map[string]int{"Ana": 2, "Beto": 1}, sum.SoldBySeller)
}
