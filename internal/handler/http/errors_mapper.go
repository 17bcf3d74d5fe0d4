package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
)

const (
	messageInternal       = "internal server error"
	messageAuthRequired   = "authentication required"
	messageNotFound       = "not found"
	messageRecordNotFound = "saved ciphertext not found"
	messageDecryptFailed  = "decryption failed"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrEncoding:   http.StatusBadRequest,
	service.ErrCrypto:     http.StatusUnprocessableEntity,
	service.ErrAuth:       http.StatusUnauthorized,
	service.ErrNotFound:   http.StatusNotFound,
}

// errorKinds lists the kinds in errorStatusMap in a fixed order, so the
// message prefix lookup does not depend on map iteration.
var errorKinds = []error{
	service.ErrValidation,
	service.ErrEncoding,
	service.ErrCrypto,
	service.ErrAuth,
	service.ErrNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text shown to the client for err.
//
// Validation, encoding and size errors expose their cause. Decryption
// failures, auth failures and missing records use fixed messages so they
// reveal nothing about keys, tokens or other owners' records.
func publicMessage(err error, status int) string {
	switch {
	case status == http.StatusInternalServerError:
		return messageInternal
	case errors.Is(err, service.ErrAuth):
		return messageAuthRequired
	case errors.Is(err, service.ErrNotFound):
		return messageRecordNotFound
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return messageDecryptFailed
	}

	msg := err.Error()
	for _, kind := range errorKinds {
		prefix := kind.Error() + ": "
		if i := strings.Index(msg, prefix); i >= 0 && errors.Is(err, kind) {
			return msg[i+len(prefix):]
		}
	}
	return msg
}
