package http

import (
	"encoding/json"
	"net/http"
)

// HealthHandler reports process liveness. It touches nothing beyond the
// response writer, so it stays green even while the ledger is unreachable.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Service: "rifa"})
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
