package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alemeds/rifa-multivendedor/internal/app"
	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// BoardReader is the minimal interface needed to render the grid.
type BoardReader interface {
	Board(ctx context.Context) (app.Board, error)
	Total() int
}

// HandleBoard returns the full [1..N] status array. Calling it is also the
// on-demand refresh: every request takes a fresh ledger snapshot.
func HandleBoard(svc BoardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := svc.Board(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		total := svc.Total()
		items := make([]itemStatus, 0, total)
		for n := 1; n <= total; n++ {
			items = append(items, newItemStatus(n, board[n]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(boardResponse{Total: total, Items: items})
	}
}

type boardResponse struct {
	Total int          `json:"total"`
	Items []itemStatus `json:"items"`
}

type itemStatus struct {
	Number     int        `json:"number"`
	Status     string     `json:"status"`
	SellerName string     `json:"seller_name,omitempty"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	BuyerName  string     `json:"buyer_name,omitempty"`
	SoldAt     *time.Time `json:"sold_at,omitempty"`
}

func newItemStatus(number int, st domain.Status) itemStatus {
	out := itemStatus{Number: number, Status: string(st.State)}
	switch st.State {
	case domain.StateReserved:
		out.SellerName = st.SellerName
		reservedAt, expiresAt := st.ReservedAt, st.ExpiresAt
		out.ReservedAt = &reservedAt
		out.ExpiresAt = &expiresAt
	case domain.StateSold:
		out.SellerName = st.SellerName
		out.BuyerName = st.BuyerName
		soldAt := st.SoldAt
		out.SoldAt = &soldAt
	}
	return out
}

// SummaryReader is the minimal interface needed for the stats panel.
type SummaryReader interface {
	Summary(ctx context.Context) (app.Summary, error)
}

// HandleSummary returns totals, progress, and per-seller sold counts.
func HandleSummary(svc SummaryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(summaryResponse{
			Total:        sum.Total,
			Sold:         sum.Sold,
			Reserved:     sum.Reserved,
			Available:    sum.Available,
			Progress:     sum.Progress,
			SoldBySeller: sum.SoldBySeller,
		})
	}
}

type summaryResponse struct {
	Total        int            `json:"total"`
	Sold         int            `json:"sold"`
	Reserved     int            `json:"reserved"`
	Available    int            `json:"available"`
	Progress     float64        `json:"progress"`
	SoldBySeller map[string]int `json:"sold_by_seller"`
}
