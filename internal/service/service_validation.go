package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/internal/validators"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// KeyValidationService rejects unsupported key sizes before a generation
// slot is taken.
type KeyValidationService struct {
	inner     KeyService
	validator validators.Validator
}

func NewKeyValidationService() KeyServiceWrapper {
	return &KeyValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *KeyValidationService) Generate(ctx context.Context, req models.GenerateKeyRequest) (models.KeyPair, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.KeyPair{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Generate(ctx, req)
}

func (v *KeyValidationService) Wrap(wrapped KeyService) KeyService {
	v.inner = wrapped
	return v
}

// CipherValidationService checks required fields of the stateless routes.
type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CipherValidationService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EncryptResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Encrypt(ctx, req)
}

func (v *CipherValidationService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Decrypt(ctx, req)
}

func (v *CipherValidationService) Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AvalancheResult{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Avalanche(ctx, req)
}

func (v *CipherValidationService) Wrap(wrapped CipherService) CipherService {
	v.inner = wrapped
	return v
}

// VaultValidationService checks create requests and record ids before the
// repository is touched. Owner checks stay with the inner service. A
// malformed record id cannot name any record and is reported as not found.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *VaultValidationService) Create(ctx context.Context, owner models.Caller, req models.CreateSavedCiphertextRequest) (models.SavedCiphertext, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SavedCiphertext{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, owner, req)
}

func (v *VaultValidationService) List(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *VaultValidationService) Delete(ctx context.Context, ref models.SavedCiphertextRef) error {
	if err := v.validator.Validate(ctx, ref, validators.FieldRecordID); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return v.inner.Delete(ctx, ref)
}

func (v *VaultValidationService) Decrypt(ctx context.Context, ref models.SavedCiphertextRef) (models.DecryptResponse, error) {
	if err := v.validator.Validate(ctx, ref, validators.FieldRecordID); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return v.inner.Decrypt(ctx, ref)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}
