package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/store"
)

// Error kinds. Every client-facing error returned by a service wraps exactly
// one of them, so the transport layer can pick a status with [errors.Is]
// while the precise cause stays in the chain.
var (
	ErrValidation = errors.New("validation error")
	ErrEncoding   = errors.New("encoding error")
	ErrCrypto     = errors.New("crypto error")
	ErrAuth       = errors.New("auth error")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrAuthRequired            = errors.New("authentication required")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUnknownAuthMode         = errors.New("unknown auth mode")
	ErrCallerTooLong           = errors.New("caller id or email is too long")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// kindOf maps a lower-layer sentinel onto its error kind. Errors without a
// kind are internal and yield nil.
func kindOf(err error) error {
	switch {
	case errors.Is(err, crypto.ErrInvalidKeySize):
		return ErrValidation
	case errors.Is(err, crypto.ErrMalformedKey),
		errors.Is(err, crypto.ErrMalformedCiphertext),
		errors.Is(err, crypto.ErrInvalidPlaintextEncoding):
		return ErrEncoding
	case errors.Is(err, crypto.ErrPlaintextTooLarge),
		errors.Is(err, crypto.ErrDecryptionFailed),
		errors.Is(err, crypto.ErrUnsupportedKey):
		return ErrCrypto
	case errors.Is(err, store.ErrSavedCiphertextNotFound):
		return ErrNotFound
	default:
		return nil
	}
}

// classify wraps err with its kind. Errors that already carry a kind and
// internal errors are returned unchanged.
func classify(err error) error {
	if err == nil || hasKind(err) {
		return err
	}
	if kind := kindOf(err); kind != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}

func hasKind(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrEncoding) ||
		errors.Is(err, ErrCrypto) ||
		errors.Is(err, ErrAuth) ||
		errors.Is(err, ErrNotFound)
}
