// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the RSA primitives. Callers match them with
// [errors.Is]; the service layer maps each one onto a client-facing error kind.
var (
	// ErrInvalidKeySize is returned when a key size other than 1024 or 2048
	// bits is requested.
	ErrInvalidKeySize = errors.New("key size must be either 1024 or 2048 bits")

	// ErrMalformedKey is returned when a PEM block cannot be decoded or does
	// not contain an RSA key of the expected kind.
	ErrMalformedKey = errors.New("malformed PEM key")

	// ErrUnsupportedKey is returned when a well-formed key cannot be used,
	// for example because its modulus is below the runtime minimum.
	ErrUnsupportedKey = errors.New("unsupported RSA key")

	// ErrMalformedCiphertext is returned when a ciphertext is not valid
	// standard base64.
	ErrMalformedCiphertext = errors.New("ciphertext is not valid base64")

	// ErrPlaintextTooLarge is returned when the plaintext exceeds the OAEP
	// payload limit of the given modulus.
	ErrPlaintextTooLarge = errors.New("plaintext too large for key size")

	// ErrDecryptionFailed is the single opaque error for every OAEP
	// decryption failure: wrong key, bad padding or wrong length.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPlaintextEncoding is returned when decrypted bytes are not
	// valid UTF-8.
	ErrInvalidPlaintextEncoding = errors.New("decrypted plaintext is not valid UTF-8")

	// ErrSealedKeyUnavailable is returned when a stored key is sealed but
	// no key-encryption key is configured to open it.
	ErrSealedKeyUnavailable = errors.New("stored key is sealed and no key-encryption key is configured")

	// ErrUnsealFailed is returned when a sealed key cannot be opened.
	ErrUnsealFailed = errors.New("failed to unseal stored key")
)
