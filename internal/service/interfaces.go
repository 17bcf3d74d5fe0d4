// Package service holds the business operations behind the HTTP routes: key
// generation, OAEP encryption and decryption, avalanche analysis, the
// owner-scoped ciphertext vault and caller authentication.
//
// Errors returned to the transport layer wrap one of the kinds declared in
// errors.go ([ErrValidation], [ErrEncoding], [ErrCrypto], [ErrAuth],
// [ErrNotFound]); anything else is an internal failure.
package service

import (
	"context"

	"github.com/MKhiriev/go-rsa-vault/models"
)

// KeyService generates RSA key pairs on the generation lane.
type KeyService interface {
	// Generate returns a new key pair. A nil KeySize selects
	// models.DefaultKeySize.
	Generate(ctx context.Context, req models.GenerateKeyRequest) (models.KeyPair, error)
}

// CipherService runs stateless OAEP operations on the cipher lane.
type CipherService interface {
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)
	Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error)
}

// VaultService manages saved ciphertexts. Every operation is scoped to the
// calling owner; records of other owners are reported as not found.
type VaultService interface {
	Create(ctx context.Context, owner models.Caller, req models.CreateSavedCiphertextRequest) (models.SavedCiphertext, error)
	List(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error)
	Delete(ctx context.Context, ref models.SavedCiphertextRef) error
	Decrypt(ctx context.Context, ref models.SavedCiphertextRef) (models.DecryptResponse, error)
}

// AuthService resolves the caller of a request and issues bearer tokens.
type AuthService interface {
	// ResolveCaller identifies the caller from the request credentials
	// according to the configured auth mode.
	ResolveCaller(ctx context.Context, credentials models.Credentials) (models.Caller, error)
	CreateToken(ctx context.Context, caller models.Caller) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) error
}

// CipherServiceWrapper defines middleware composition for CipherService.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService
}

// KeyServiceWrapper defines middleware composition for KeyService.
type KeyServiceWrapper interface {
	Wrap(KeyService) KeyService
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}
