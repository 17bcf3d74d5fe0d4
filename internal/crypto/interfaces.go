// Package crypto implements the RSA primitives of the service: key-pair
// generation, RSA-OAEP (SHA-256, MGF1-SHA-256) encryption and decryption,
// the avalanche-effect analyzer, a short-lived parsed-key cache and the
// envelope sealer that protects stored private keys at rest.
//
// All types are safe for concurrent use. None of them block on anything other
// than CPU, so callers are expected to bound concurrency themselves
// (see package workers).
package crypto

import (
	"github.com/MKhiriev/go-rsa-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyPairGenerator produces fresh RSA key pairs with public exponent 65537.
type KeyPairGenerator interface {
	// Generate returns a new key pair of the requested size, or
	// [ErrInvalidKeySize] if the size is unsupported.
	Generate(keySize models.KeySize) (models.KeyPair, error)
}

// Cipher performs RSA-OAEP with SHA-256 and MGF1-SHA-256 and an empty label.
type Cipher interface {
	// Encrypt encrypts plaintext under the PEM public key and returns the
	// ciphertext as standard base64. Output is randomized.
	Encrypt(plaintext []byte, publicKeyPEM string) (string, error)

	// Decrypt decodes the base64 ciphertext and decrypts it with the PEM
	// private key. Every failure after decoding is [ErrDecryptionFailed].
	Decrypt(ciphertextB64, privateKeyPEM string) ([]byte, error)
}

// AvalancheAnalyzer measures the bit difference between the ciphertexts of a
// plaintext and of the same plaintext prefixed with "s".
type AvalancheAnalyzer interface {
	Analyze(publicKeyPEM, plaintext string) (models.AvalancheResult, error)
}

// KeySealer protects private keys stored by the vault.
type KeySealer interface {
	// Enabled reports whether a key-encryption key is configured.
	Enabled() bool

	// Seal wraps privateKeyPEM. When sealing is disabled the input is
	// returned unchanged.
	Seal(privateKeyPEM string) (string, error)

	// Open reverses Seal. Values that were never sealed are returned as-is.
	Open(stored string) (string, error)
}
