package http

import (
	"context"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockKeyService struct {
	generateFn func(ctx context.Context, req models.GenerateKeyRequest) (models.KeyPair, error)
}

func (m *mockKeyService) Generate(ctx context.Context, req models.GenerateKeyRequest) (models.KeyPair, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return models.KeyPair{}, nil
}

type mockCipherService struct {
	encryptFn   func(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)
	decryptFn   func(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)
	avalancheFn func(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error)
}

func (m *mockCipherService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	if m.encryptFn != nil {
		return m.encryptFn(ctx, req)
	}
	return models.EncryptResponse{}, nil
}
func (m *mockCipherService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	if m.decryptFn != nil {
		return m.decryptFn(ctx, req)
	}
	return models.DecryptResponse{}, nil
}
func (m *mockCipherService) Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error) {
	if m.avalancheFn != nil {
		return m.avalancheFn(ctx, req)
	}
	return models.AvalancheResult{}, nil
}

type mockVaultService struct {
	createFn  func(ctx context.Context, owner models.Caller, req models.CreateSavedCiphertextRequest) (models.SavedCiphertext, error)
	listFn    func(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error)
	deleteFn  func(ctx context.Context, ref models.SavedCiphertextRef) error
	decryptFn func(ctx context.Context, ref models.SavedCiphertextRef) (models.DecryptResponse, error)
}

func (m *mockVaultService) Create(ctx context.Context, owner models.Caller, req models.CreateSavedCiphertextRequest) (models.SavedCiphertext, error) {
	if m.createFn != nil {
		return m.createFn(ctx, owner, req)
	}
	return models.SavedCiphertext{}, nil
}
func (m *mockVaultService) List(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, nil
}
func (m *mockVaultService) Delete(ctx context.Context, ref models.SavedCiphertextRef) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ref)
	}
	return nil
}
func (m *mockVaultService) Decrypt(ctx context.Context, ref models.SavedCiphertextRef) (models.DecryptResponse, error) {
	if m.decryptFn != nil {
		return m.decryptFn(ctx, ref)
	}
	return models.DecryptResponse{}, nil
}

// mockAuthService accepts the bearer token "good" as alice and rejects
// everything else.
type mockAuthService struct {
	resolveFn func(ctx context.Context, credentials models.Credentials) (models.Caller, error)
}

func (m *mockAuthService) ResolveCaller(ctx context.Context, credentials models.Credentials) (models.Caller, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, credentials)
	}
	if credentials.BearerToken == "good" {
		return testCaller, nil
	}
	return models.Caller{}, service.ErrAuth
}
func (m *mockAuthService) CreateToken(context.Context, models.Caller) (models.Token, error) {
	return models.Token{}, nil
}
func (m *mockAuthService) ParseToken(context.Context, string) (models.Token, error) {
	return models.Token{}, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error {
	return m.err
}

var testCaller = models.Caller{ID: "alice", Email: "alice@example.com"}

// newMockServices returns services whose every field is a permissive mock.
func newMockServices() *service.Services {
	return &service.Services{
		KeyService:     &mockKeyService{},
		CipherService:  &mockCipherService{},
		VaultService:   &mockVaultService{},
		AuthService:    &mockAuthService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
		HealthService:  &mockHealthService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, metrics.Nop(), 0, logger.Nop())
}
