package http

import (
	"net/http"

	"github.com/MKhiriev/go-rsa-vault/models"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.services.KeyService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, pair, http.StatusOK)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	var req models.EncryptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.CipherService.Encrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, resp, http.StatusOK)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	var req models.DecryptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.CipherService.Decrypt(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, resp, http.StatusOK)
}

func (h *Handler) avalanche(w http.ResponseWriter, r *http.Request) {
	var req models.AvalancheRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.CipherService.Avalanche(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, result, http.StatusOK)
}
