package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/workers"
	"github.com/MKhiriev/go-rsa-vault/models"
)

type cipherService struct {
	cipher   crypto.Cipher
	analyzer crypto.AvalancheAnalyzer
	lane     workers.Lane
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewCipherService returns a CipherService running every operation on lane.
func NewCipherService(cipher crypto.Cipher, analyzer crypto.AvalancheAnalyzer, lane workers.Lane, m *metrics.Metrics, logger *logger.Logger) CipherService {
	if m == nil {
		m = metrics.Nop()
	}

	return &cipherService{
		cipher:   cipher,
		analyzer: analyzer,
		lane:     lane,
		metrics:  m,
		logger:   logger,
	}
}

func (s *cipherService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	var ciphertext string
	err := s.lane.Do(ctx, func() error {
		var encErr error
		ciphertext, encErr = s.cipher.Encrypt([]byte(req.Plaintext), req.PublicKey)
		return encErr
	})
	observe(s.metrics, models.OperationEncrypt, start, err)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Encrypt").Int("plaintext_len", len(req.Plaintext)).Msg("encryption failed")
		return models.EncryptResponse{}, classify(err)
	}

	return models.EncryptResponse{Ciphertext: ciphertext}, nil
}

func (s *cipherService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	log := logger.FromContext(ctx)

	plaintext, err := decryptOnLane(ctx, s.lane, s.cipher, s.metrics, req.Ciphertext, req.PrivateKey)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Decrypt").Msg("decryption failed")
		return models.DecryptResponse{}, err
	}

	return models.DecryptResponse{Plaintext: plaintext}, nil
}

func (s *cipherService) Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error) {
	log := logger.FromContext(ctx)

	start := time.Now()
	var result models.AvalancheResult
	err := s.lane.Do(ctx, func() error {
		var anErr error
		result, anErr = s.analyzer.Analyze(req.PublicKey, req.Plaintext)
		return anErr
	})
	observe(s.metrics, models.OperationAvalanche, start, err)
	if err != nil {
		log.Err(err).Str("func", "cipherService.Avalanche").Int("plaintext_len", len(req.Plaintext)).Msg("avalanche analysis failed")
		return models.AvalancheResult{}, classify(err)
	}

	return result, nil
}

// decryptOnLane decrypts on lane and requires the recovered bytes to be
// UTF-8. Shared by the stateless route and the vault.
func decryptOnLane(ctx context.Context, lane workers.Lane, cipher crypto.Cipher, m *metrics.Metrics, ciphertext, privateKeyPEM string) (string, error) {
	start := time.Now()
	var plaintext []byte
	err := lane.Do(ctx, func() error {
		var decErr error
		plaintext, decErr = cipher.Decrypt(ciphertext, privateKeyPEM)
		return decErr
	})
	if err == nil && !utf8.Valid(plaintext) {
		err = fmt.Errorf("%w: %w", ErrEncoding, crypto.ErrInvalidPlaintextEncoding)
	}
	observe(m, models.OperationDecrypt, start, err)
	if err != nil {
		return "", classify(err)
	}

	return string(plaintext), nil
}
