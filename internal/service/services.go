package service

import (
	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/store"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
)

type Services struct {
	KeyService     KeyService
	CipherService  CipherService
	VaultService   VaultService
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service over the shared crypto primitives.
// Request validation is layered on top of the key, cipher and vault services.
func NewServices(storages *store.Storages, lanes *workers.Workers, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	keys := crypto.NewKeyCache(cfg.App.KeyCacheTTL)
	cipher := crypto.NewOAEPCipher(keys)
	analyzer := crypto.NewAvalancheAnalyzer(keys)
	sealer := crypto.NewKeySealer(cfg.App.KeyEncryptionKey, cfg.App.KeyEncryptionSalt)

	if !sealer.Enabled() {
		logger.Warn().Msg("no key-encryption key configured: saved private keys are stored unsealed")
	}

	keyService := NewKeyService(crypto.NewKeyPairGenerator(), lanes.Generation, m, logger)
	cipherService := NewCipherService(cipher, analyzer, lanes.Cipher, m, logger)
	vaultService := NewVaultService(storages.SavedCiphertexts, sealer, cipher, lanes.Cipher, m, logger)

	return &Services{
		KeyService:     NewKeyValidationService().Wrap(keyService),
		CipherService:  NewCipherValidationService().Wrap(cipherService),
		VaultService:   NewVaultValidationService().Wrap(vaultService),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.Health),
	}, nil
}
