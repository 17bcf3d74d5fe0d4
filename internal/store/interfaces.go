// Package store persists vault records. A [SavedCiphertextRepository] is
// backed by PostgreSQL, SQLite or process memory, selected by the DSN.
//
// Every repository method is scoped by owner: a record that exists but
// belongs to someone else behaves exactly like a missing one.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rsa-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SavedCiphertextRepository is the low-level vault repository.
type SavedCiphertextRepository interface {
	// Create inserts a new active record in a single statement.
	Create(ctx context.Context, record models.SavedCiphertext) error

	// ListActive returns the owner's active records, newest first.
	ListActive(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error)

	// GetActive returns one active record of the owner or
	// [ErrSavedCiphertextNotFound].
	GetActive(ctx context.Context, id, ownerID string) (models.SavedCiphertext, error)

	// SoftDelete moves an active record of the owner to deleted. It returns
	// [ErrSavedCiphertextNotFound] when no active record matched.
	SoftDelete(ctx context.Context, id, ownerID string, deletedAt time.Time) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
