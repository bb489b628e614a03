package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Canceler is the minimal interface needed to cancel a reservation.
type Canceler interface {
	Cancel(ctx context.Context, itemNumber int, sellerName string) error
}

// HandleCancel returns an HTTP handler for releasing the caller's own
// reservation. Cancelling an already-gone reservation succeeds as a no-op.
func HandleCancel(svc Canceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemNumber, ok := itemNumberParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidItemNumber, "invalid item number")
			return
		}

		var req cancelRequest
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

		if err := svc.Cancel(r.Context(), itemNumber, req.SellerName); err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type cancelRequest struct {
	SellerName string `json:"seller_name"`
}
