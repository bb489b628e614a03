package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alemeds/rifa-multivendedor/internal/app"
	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

// Confirmer is the minimal interface needed to confirm a sale.
type Confirmer interface {
	Confirm(ctx context.Context, in app.ConfirmInput) (domain.SaleRecord, error)
}

// HandleConfirm returns an HTTP handler for promoting a reservation into a
// sale.
func HandleConfirm(svc Confirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemNumber, ok := itemNumberParam(r)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidItemNumber, "invalid item number")
			return
		}

		var req confirmRequest
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
		if req.BuyerName == "" {
			writeError(w, http.StatusBadRequest, codeBuyerNameRequired, domain.ErrBuyerNameRequired.Error())
			return
		}

		sale, err := svc.Confirm(r.Context(), app.ConfirmInput{
			ItemNumber:   itemNumber,
			SellerName:   req.SellerName,
			BuyerName:    req.BuyerName,
			BuyerContact: req.BuyerContact,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(confirmResponse{
			ItemNumber: sale.ItemNumber,
			BuyerName:  sale.BuyerName,
			SellerName: sale.SellerName,
			SoldAt:     sale.SoldAt,
		})
	}
}

type confirmRequest struct {
	SellerName   string `json:"seller_name"`
	BuyerName    string `json:"buyer_name"`
	BuyerContact string `json:"buyer_contact"`
}

type confirmResponse struct {
	ItemNumber int       `json:"item_number"`
	BuyerName  string    `json:"buyer_name"`
	SellerName string    `json:"seller_name"`
	SoldAt     time.Time `json:"sold_at"`
}
