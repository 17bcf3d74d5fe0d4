package http

import (
	"net/http"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// health reports 200 when the storage backend answers a ping and 503
// otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("health check failed")
		_, _ = utils.WriteJSON(w, models.Envelope{Success: false, Error: "storage unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeData(w, r, nil, http.StatusOK)
}
