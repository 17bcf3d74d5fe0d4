package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/models"
)

const (
	recordActive uint32 = iota
	recordDeleted
)

// memoryRecord holds an immutable record plus its lifecycle state word.
// The only transition is active -> deleted, taken with a compare-and-swap.
type memoryRecord struct {
	record models.SavedCiphertext
	state  atomic.Uint32
}

func (m *memoryRecord) visibleTo(ownerID string) bool {
	return m.record.OwnerID == ownerID && m.state.Load() == recordActive
}

// memorySavedCiphertextRepository keeps records in process memory. It backs
// the server when no database DSN is configured and is the reference
// implementation in service tests.
//
// The map is guarded by an RWMutex and only grows; deletion flips the
// per-record state word, so a decrypt racing a delete observes either the
// whole record or NotFound.
type memorySavedCiphertextRepository struct {
	mu      sync.RWMutex
	records map[string]*memoryRecord
	logger  *logger.Logger
}

// NewMemorySavedCiphertextRepository constructs an empty in-memory
// [SavedCiphertextRepository].
func NewMemorySavedCiphertextRepository(logger *logger.Logger) SavedCiphertextRepository {
	return &memorySavedCiphertextRepository{
		records: make(map[string]*memoryRecord),
		logger:  logger,
	}
}

func (r *memorySavedCiphertextRepository) Create(ctx context.Context, record models.SavedCiphertext) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := &memoryRecord{record: record}
	stored.record.DeletedAt = nil

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID]; exists {
		logger.FromContext(ctx).Error().
			Str("func", "memorySavedCiphertextRepository.Create").
			Str("id", record.ID).
			Msg("record id already taken")
		return ErrSavedCiphertextNotSaved
	}

	r.records[record.ID] = stored
	return nil
}

func (r *memorySavedCiphertextRepository) ListActive(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	records := make([]models.SavedCiphertext, 0, 16)
	for _, stored := range r.records {
		if stored.visibleTo(ownerID) {
			records = append(records, stored.record)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(records, func(a, b models.SavedCiphertext) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return records, nil
}

func (r *memorySavedCiphertextRepository) GetActive(ctx context.Context, id, ownerID string) (models.SavedCiphertext, error) {
	if err := ctx.Err(); err != nil {
		return models.SavedCiphertext{}, err
	}

	stored, ok := r.lookup(id)
	if !ok || !stored.visibleTo(ownerID) {
		return models.SavedCiphertext{}, ErrSavedCiphertextNotFound
	}

	return stored.record, nil
}

func (r *memorySavedCiphertextRepository) SoftDelete(ctx context.Context, id, ownerID string, deletedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored, ok := r.lookup(id)
	if !ok || stored.record.OwnerID != ownerID {
		return ErrSavedCiphertextNotFound
	}

	if !stored.state.CompareAndSwap(recordActive, recordDeleted) {
		return ErrSavedCiphertextNotFound
	}

	logger.FromContext(ctx).Debug().
		Str("func", "memorySavedCiphertextRepository.SoftDelete").
		Str("id", id).
		Time("deleted_at", deletedAt).
		Msg("record deleted")

	return nil
}

func (r *memorySavedCiphertextRepository) lookup(id string) (*memoryRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.records[id]
	return stored, ok
}

type nopHealthChecker struct{}

func (nopHealthChecker) Ping(context.Context) error { return nil }
