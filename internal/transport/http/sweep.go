package http

import (
	"encoding/json"
	"net/http"

	"github.com/alemeds/rifa-multivendedor/internal/app"
)

// HandleSweep triggers an expired-reservation sweep on demand. The poller runs
// the same pass every cycle; this endpoint just lets a client force it.
func HandleSweep(svc app.Sweeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		swept, err := svc.SweepExpired(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sweepResponse{Swept: swept})
	}
}

type sweepResponse struct {
	Swept int `json:"swept"`
}
