package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/mock"
	"github.com/MKhiriev/go-rsa-vault/internal/store"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryStorages(t *testing.T) *store.Storages {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices_WiresValidatedServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: jwtAuthConfig()}
	cfg.App.Version = "1.2.3"

	svcs, err := NewServices(newMemoryStorages(t), workers.NewWorkers(config.Workers{}, metrics.Nop()), cfg, metrics.Nop(), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &KeyValidationService{}, svcs.KeyService)
	assert.IsType(t, &CipherValidationService{}, svcs.CipherService)
	assert.IsType(t, &VaultValidationService{}, svcs.VaultService)
	assert.Equal(t, "1.2.3", svcs.AppInfoService.GetAppVersion(context.Background()))
	assert.NoError(t, svcs.HealthService.Check(context.Background()))

	_, err = svcs.KeyService.Generate(context.Background(), models.GenerateKeyRequest{KeySize: ptrInt(4096)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := &config.StructuredConfig{App: jwtAuthConfig()}

	svcs, err := NewServices(newMemoryStorages(t), workers.NewWorkers(config.Workers{}, nil), cfg, nil, logger.Nop())

	assert.Nil(t, svcs)
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// HealthService
// ─────────────────────────────────────────────

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	svc := NewHealthService(checker)

	checker.EXPECT().Ping(gomock.Any()).Return(nil)
	require.NoError(t, svc.Check(context.Background()))

	down := errors.New("connection refused")
	checker.EXPECT().Ping(gomock.Any()).Return(down)
	require.ErrorIs(t, svc.Check(context.Background()), down)
}
