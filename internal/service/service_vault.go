package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/store"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// Vault lifecycle events reported to metrics.
const (
	vaultEventCreated   = "created"
	vaultEventDeleted   = "deleted"
	vaultEventDecrypted = "decrypted"
)

// vaultService is the concrete implementation of VaultService.
//
// Records move through active to deleted exactly once; the repository
// enforces that transition atomically. Private keys are sealed before they
// reach the repository and opened only for the duration of a decrypt.
type vaultService struct {
	repository store.SavedCiphertextRepository
	sealer     crypto.KeySealer
	cipher     crypto.Cipher
	lane       workers.Lane
	ids        *utils.RecordIDs
	now        func() time.Time
	metrics    *metrics.Metrics

	logger *logger.Logger
}

// NewVaultService constructs a VaultService. Decryption of stored records runs
// on lane, the same lane as the stateless cipher routes.
func NewVaultService(
	repository store.SavedCiphertextRepository,
	sealer crypto.KeySealer,
	cipher crypto.Cipher,
	lane workers.Lane,
	m *metrics.Metrics,
	logger *logger.Logger,
) VaultService {
	if m == nil {
		m = metrics.Nop()
	}

	return &vaultService{
		repository: repository,
		sealer:     sealer,
		cipher:     cipher,
		lane:       lane,
		ids:        utils.NewRecordIDs(),
		now:        time.Now,
		metrics:    m,
		logger:     logger,
	}
}

// Create stores a new active record for owner.
//
// The name is trimmed; the ciphertext is stored verbatim. No trial decryption
// is attempted, so a mismatched key pair is only detected on Decrypt.
func (s *vaultService) Create(ctx context.Context, owner models.Caller, req models.CreateSavedCiphertextRequest) (models.SavedCiphertext, error) {
	log := logger.FromContext(ctx)

	if !owner.Authenticated() {
		return models.SavedCiphertext{}, fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
	}

	sealed, err := s.sealer.Seal(strings.TrimSpace(req.PrivateKey))
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Str("owner_id", owner.ID).Msg("sealing private key failed")
		return models.SavedCiphertext{}, fmt.Errorf("sealing private key: %w", err)
	}

	record := models.SavedCiphertext{
		ID:         s.ids.Next(),
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		Name:       strings.TrimSpace(req.Name),
		Ciphertext: req.Ciphertext,
		PrivateKey: sealed,
		CreatedAt:  s.now().UTC(),
	}

	if err = s.repository.Create(ctx, record); err != nil {
		log.Err(err).Str("func", "vaultService.Create").Str("owner_id", owner.ID).Msg("saving ciphertext failed")
		return models.SavedCiphertext{}, fmt.Errorf("saving ciphertext: %w", classify(err))
	}

	s.metrics.RecordVaultEvent(vaultEventCreated)
	log.Info().Str("id", record.ID).Str("owner_id", owner.ID).Msg("ciphertext saved")

	return record, nil
}

// List returns the owner's active records, newest first.
func (s *vaultService) List(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
	}

	records, err := s.repository.ListActive(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.List").Str("owner_id", ownerID).Msg("listing saved ciphertexts failed")
		return nil, fmt.Errorf("listing saved ciphertexts: %w", classify(err))
	}

	return records, nil
}

// Delete moves the record to deleted. A second delete of the same record,
// like a delete of somebody else's record, reports ErrNotFound.
func (s *vaultService) Delete(ctx context.Context, ref models.SavedCiphertextRef) error {
	log := logger.FromContext(ctx)

	if ref.OwnerID == "" {
		return fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
	}

	if err := s.repository.SoftDelete(ctx, ref.ID, ref.OwnerID, s.now().UTC()); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Str("id", ref.ID).Str("owner_id", ref.OwnerID).Msg("deleting saved ciphertext failed")
		return classify(err)
	}

	s.metrics.RecordVaultEvent(vaultEventDeleted)
	log.Info().Str("id", ref.ID).Str("owner_id", ref.OwnerID).Msg("saved ciphertext deleted")

	return nil
}

// Decrypt decrypts a stored record with its stored key. The plaintext is
// returned to the caller and never persisted.
func (s *vaultService) Decrypt(ctx context.Context, ref models.SavedCiphertextRef) (models.DecryptResponse, error) {
	log := logger.FromContext(ctx)

	if ref.OwnerID == "" {
		return models.DecryptResponse{}, fmt.Errorf("%w: %w", ErrAuth, ErrAuthRequired)
	}

	record, err := s.repository.GetActive(ctx, ref.ID, ref.OwnerID)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Decrypt").Str("id", ref.ID).Str("owner_id", ref.OwnerID).Msg("loading saved ciphertext failed")
		return models.DecryptResponse{}, classify(err)
	}

	privateKey, err := s.sealer.Open(record.PrivateKey)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Decrypt").Str("id", ref.ID).Msg("opening stored private key failed")
		return models.DecryptResponse{}, fmt.Errorf("opening stored private key: %w", err)
	}

	plaintext, err := decryptOnLane(ctx, s.lane, s.cipher, s.metrics, record.Ciphertext, privateKey)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Decrypt").Str("id", ref.ID).Msg("decrypting saved ciphertext failed")
		return models.DecryptResponse{}, err
	}

	s.metrics.RecordVaultEvent(vaultEventDecrypted)

	return models.DecryptResponse{Plaintext: plaintext}, nil
}
