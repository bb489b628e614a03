package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alemeds/rifa-multivendedor/internal/domain"
)

const (
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidItemNumber  = "invalid_item_number"
	codeSellerNameRequired = "seller_name_required"
	codeBuyerNameRequired  = "buyer_name_required"
	codeNotReserved        = "not_reserved"
	codeNotYourReservation = "not_your_reservation"
	codeAlreadyReserved    = "already_reserved"
	codeAlreadySold        = "already_sold"
	codeStoreUnavailable   = "store_unavailable"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps engine rejections to HTTP statuses. Business-rule
// failures carry a specific code so the UI can explain why an action was
// refused.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidItemNumber):
		writeError(w, http.StatusBadRequest, codeInvalidItemNumber, err.Error())
	case errors.Is(err, domain.ErrSellerNameRequired):
		writeError(w, http.StatusBadRequest, codeSellerNameRequired, err.Error())
	case errors.Is(err, domain.ErrBuyerNameRequired):
		writeError(w, http.StatusBadRequest, codeBuyerNameRequired, err.Error())
	case errors.Is(err, domain.ErrNotReserved):
		writeError(w, http.StatusConflict, codeNotReserved, err.Error())
	case errors.Is(err, domain.ErrNotYourReservation):
		writeError(w, http.StatusForbidden, codeNotYourReservation, err.Error())
	case errors.Is(err, domain.ErrAlreadyReserved):
		writeError(w, http.StatusConflict, codeAlreadyReserved, err.Error())
	case errors.Is(err, domain.ErrAlreadySold):
		writeError(w, http.StatusConflict, codeAlreadySold, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "ledger store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
