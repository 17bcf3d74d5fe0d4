package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/internal/store"
)

type healthService struct {
	checker store.HealthChecker
}

func NewHealthService(checker store.HealthChecker) HealthService {
	return &healthService{checker: checker}
}

// Check pings the storage backend.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		return fmt.Errorf("storage is unreachable: %w", err)
	}
	return nil
}
