package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// writeData writes a successful envelope. A nil data omits the field.
func writeData(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, models.Envelope{Success: true, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeData").Msg("writing response failed")
	}
}

// writeError maps err onto a status and a client-safe message and writes a
// failed envelope. Internal errors are logged in full and answered with a
// generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := publicMessage(err, status)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.Envelope{Success: false, Error: message}, status); wErr != nil {
		log.Err(wErr).Str("func", "writeError").Msg("writing response failed")
	}
}

// decodeJSON reads a bounded JSON body into dst. Decoding failures are
// validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: %w: body exceeds %d bytes", service.ErrValidation, ErrInvalidJSON, maxBodyBytes)
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w: empty body", service.ErrValidation, ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %w: %w", service.ErrValidation, ErrInvalidJSON, err)
	}
	return nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.Envelope{Success: false, Error: messageNotFound}, http.StatusNotFound)
}
