package http

import (
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// requestTimeout bounds /api requests; zero disables the deadline.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.Nop()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
