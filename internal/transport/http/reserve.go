package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Reserver is the minimal interface needed to reserve an item.
type Reserver interface {
	Reserve(ctx context.Context, itemNumber int, sellerName string) (domain.ReservationRecord, error)
}

// HandleReserve returns an HTTP handler for reserving an item.
func HandleReserve(svc Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemNumber, ok := itemNumberParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidItemNumber, "invalid item number")
			return
		}

		var req reserveRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if req.SellerName == "" {
			writeError(w, http.StatusBadRequest, codeSellerNameRequired, domain.ErrSellerNameRequired.Error())
			return
		}

		rec, err := svc.Reserve(r.Context(), itemNumber, req.SellerName)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(reserveResponse{
			ItemNumber: rec.ItemNumber,
			SellerName: rec.SellerName,
			ReservedAt: rec.ReservedAt,
			ExpiresAt:  rec.ExpiresAt(),
		})
	}
}

func itemNumberParam(r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		return 0, false
	}
	return n, true
}

type reserveRequest struct {
	SellerName string `json:"seller_name"`
}

type reserveResponse struct {
	ItemNumber int       `json:"item_number"`
	SellerName string    `json:"seller_name"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
