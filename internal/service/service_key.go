package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
	"github.com/MKhiriev/go-rsa-vault/models"
)

type keyService struct {
	generator crypto.KeyPairGenerator
	lane      workers.Lane
	metrics   *metrics.Metrics

	logger *logger.Logger
}

// NewKeyService returns a KeyService that runs generator on lane.
func NewKeyService(generator crypto.KeyPairGenerator, lane workers.Lane, m *metrics.Metrics, logger *logger.Logger) KeyService {
	if m == nil {
		m = metrics.Nop()
	}

	return &keyService{
		generator: generator,
		lane:      lane,
		metrics:   m,
		logger:    logger,
	}
}

func (s *keyService) Generate(ctx context.Context, req models.GenerateKeyRequest) (models.KeyPair, error) {
	log := logger.FromContext(ctx)

	size := models.DefaultKeySize
	if req.KeySize != nil {
		size = models.KeySize(*req.KeySize)
	}

	start := time.Now()
	var pair models.KeyPair
	err := s.lane.Do(ctx, func() error {
		var genErr error
		pair, genErr = s.generator.Generate(size)
		return genErr
	})
	observe(s.metrics, models.OperationGenerate, start, err)
	if err != nil {
		log.Err(err).Str("func", "keyService.Generate").Int("key_size", int(size)).Msg("key generation failed")
		return models.KeyPair{}, classify(err)
	}

	log.Debug().Int("key_size", int(size)).Dur("took", time.Since(start)).Msg("key pair generated")
	return pair, nil
}

// observe records the outcome of one RSA operation.
func observe(m *metrics.Metrics, op models.Operation, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	m.RecordOperation(string(op), result, time.Since(start))
}
