package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// Backend is one of [BackendMemory], [BackendPostgres], [BackendSQLite].
	Backend string

	SavedCiphertexts SavedCiphertextRepository
	Health           HealthChecker

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN, runs migrations for
// SQL backends and wires the vault repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, source, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	log.Info().Str("backend", backend).Msg("creating new storages...")

	var db *DB
	switch backend {
	case BackendMemory:
		log.Warn().Msg("no database configured: vault records are kept in memory and lost on restart")
		return &Storages{
			Backend:          backend,
			SavedCiphertexts: NewMemorySavedCiphertextRepository(log),
			Health:           nopHealthChecker{},
		}, nil
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, source, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, source, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", backend, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLStorages(backend, db, log), nil
}

func newSQLStorages(backend string, db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Backend:          backend,
		SavedCiphertexts: NewSavedCiphertextRepository(db, log),
		Health:           db,
		db:               db,
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
