package app

import (
	"context"

	"github.com/alemeds/rifa-multivendedor/internal/clock"
	"github.com/alemeds/rifa-multivendedor/internal/domain"
	"github.com/alemeds/rifa-multivendedor/internal/ledger"
)

// BoardService is the read model every caller and the UI consume. It owns no
// state: each call takes a fresh snapshot and resolves it.
type BoardService struct {
	ledger ledger.Ledger
	clock  clock.Clock
	total  int
}

func NewBoardService(led ledger.Ledger, clk clock.Clock, total int) *BoardService {
	return &BoardService{
		ledger: led,
		clock:  clk,
		total:  total,
	}
}

// Total returns the fixed inventory size N.
func (s *BoardService) Total() int {
	return s.total
}

// Snapshot reads both ledger tables. Either both reads succeed or the caller
// gets an error; a partial view is never returned.
func (s *BoardService) Snapshot(ctx context.Context) (Snapshot, error) {
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

// Board resolves the full [1..N] status mapping from a fresh snapshot.
func (s *BoardService) Board(ctx context.Context) (Board, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(snap, s.clock.Now(), s.total), nil
}

// Summary aggregates a board into the live stats shown next to the grid.
type Summary struct {
	Total        int
	Sold         int
	Reserved     int
	Available    int
	Progress     float64
	SoldBySeller map[string]int
}

func (s *BoardService) Summary(ctx context.Context) (Summary, error) {
	board, err := s.Board(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(board, s.total), nil
}

// Summarize is pure so stats stay consistent with whatever board the caller
// already holds.
func Summarize(board Board, total int) Summary {
	sum := Summary{
		Total:        total,
		SoldBySeller: make(map[string]int),
	}
	for n := 1; n <= total; n++ {
		switch board[n].State {
		case domain.StateSold:
			sum.Sold++
			sum.SoldBySeller[board[n].SellerName]++
		case domain.StateReserved:
			sum.Reserved++
		default:
			sum.Available++
		}
	}
	if total > 0 {
		sum.Progress = float64(sum.Sold) / float64(total)
	}
	return sum
}
