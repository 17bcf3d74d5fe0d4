package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTP verifies that a configured HTTPAddress initialises the
// HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    ":8080",
		RequestTimeout: time.Second,
	}

	h, err := NewHandlers(newTestServices(), cfg, metrics.Nop(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NilMetrics verifies that metrics are optional.
func TestNewHandlers_NilMetrics(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{HTTPAddress: ":8080"}, nil, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that without an HTTPAddress NewHandlers
// returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, metrics.Nop(), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

// TestNewHandlers_IndependentInstances verifies that two calls to NewHandlers
// produce independent *Handlers instances.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(newTestServices(), cfg, metrics.Nop(), logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, metrics.Nop(), logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
