// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// go-rsa-vault server.
//
// The primary abstraction is [ServerAdapter], which hides the HTTP details
// (base URL, envelope decoding, auth headers) from the command-line client.
// The package ships a REST implementation ([NewHTTPServerAdapter]) built on
// resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's own error text is kept in the wrapped message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rsa-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-rsa-vault server.
// Implementations are responsible for serialisation, authentication header
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Generate requests a fresh key pair. A zero keySize lets the server
	// pick its default.
	Generate(ctx context.Context, keySize int) (models.KeyPair, error)

	// Encrypt returns the base64 OAEP ciphertext of plaintext.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)

	// Decrypt recovers the plaintext of a base64 ciphertext.
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)

	// Avalanche runs the one-character avalanche analysis.
	Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error)

	// ListSavedCiphertexts returns the caller's active records, newest first.
	ListSavedCiphertexts(ctx context.Context) ([]models.SavedCiphertextView, error)

	// SaveCiphertext stores a ciphertext together with its private key.
	SaveCiphertext(ctx context.Context, req models.CreateSavedCiphertextRequest) (models.SavedCiphertextView, error)

	// DeleteSavedCiphertext soft-deletes one of the caller's records.
	DeleteSavedCiphertext(ctx context.Context, id string) error

	// DecryptSavedCiphertext decrypts a stored record server-side.
	DecryptSavedCiphertext(ctx context.Context, id string) (models.DecryptResponse, error)

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)
}
