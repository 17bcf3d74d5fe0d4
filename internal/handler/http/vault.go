package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSavedCiphertexts(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	records, err := h.services.VaultService.List(r.Context(), caller.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]models.SavedCiphertextView, 0, len(records))
	for _, record := range records {
		views = append(views, record.View())
	}

	writeData(w, r, views, http.StatusOK)
}

func (h *Handler) createSavedCiphertext(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateSavedCiphertextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.VaultService.Create(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, record.View(), http.StatusCreated)
}

func (h *Handler) deleteSavedCiphertext(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	ref := models.SavedCiphertextRef{ID: chi.URLParam(r, "id"), OwnerID: caller.ID}
	if err := h.services.VaultService.Delete(r.Context(), ref); err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, nil, http.StatusOK)
}

func (h *Handler) decryptSavedCiphertext(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	ref := models.SavedCiphertextRef{ID: chi.URLParam(r, "id"), OwnerID: caller.ID}
	resp, err := h.services.VaultService.Decrypt(r.Context(), ref)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, resp, http.StatusOK)
}

// callerFromRequest returns the caller stored by the auth middleware and
// answers 401 when there is none.
func callerFromRequest(w http.ResponseWriter, r *http.Request) (models.Caller, bool) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", "callerFromRequest").Msg("vault route reached without a caller")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrAuth, service.ErrAuthRequired))
		return models.Caller{}, false
	}
	return caller, true
}
