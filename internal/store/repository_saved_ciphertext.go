package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/models"
)

// savedCiphertextRepository is the SQL implementation of
// [SavedCiphertextRepository] for both PostgreSQL and SQLite. Every method is
// a single statement against the "saved_ciphertexts" table, which is what
// makes create, delete and decrypt linearizable per record.
//
// Methods log through the context-scoped logger obtained via
// [logger.FromContext].
type savedCiphertextRepository struct {
	*DB
	logger *logger.Logger
}

// NewSavedCiphertextRepository constructs a [SavedCiphertextRepository]
// backed by db.
func NewSavedCiphertextRepository(db *DB, logger *logger.Logger) SavedCiphertextRepository {
	return &savedCiphertextRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *savedCiphertextRepository) Create(ctx context.Context, record models.SavedCiphertext) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSavedCiphertextQuery(r.builder(), record)
	if err != nil {
		log.Err(err).Str("func", "savedCiphertextRepository.Create").Msg("failed to create query")
		return err
	}

	// Ids are freshly generated, so a duplicate on the retried insert means
	// the first attempt committed before its connection failed.
	var (
		result   sql.Result
		attempts int
	)
	err = r.withRetry(ctx, func() error {
		attempts++
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		if execErr != nil && attempts > 1 && isUniqueViolation(execErr) {
			log.Warn().
				Str("func", "savedCiphertextRepository.Create").
				Str("id", record.ID).
				Msg("retried insert found the record already stored")
			result = nil
			return nil
		}
		return execErr
	})
	if err == nil && result == nil {
		return nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "savedCiphertextRepository.Create").
			Str("id", record.ID).
			Str("owner_id", record.OwnerID).
			Msg("failed to insert saved ciphertext")
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrSavedCiphertextNotSaved, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Error().
			Str("func", "savedCiphertextRepository.Create").
			Str("id", record.ID).
			Msg("provided saved ciphertext was not saved")
		return ErrSavedCiphertextNotSaved
	}

	return nil
}

func (r *savedCiphertextRepository) ListActive(ctx context.Context, ownerID string) ([]models.SavedCiphertext, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveSavedCiphertextsQuery(r.builder(), ownerID)
	if err != nil {
		log.Err(err).Str("func", "savedCiphertextRepository.ListActive").Msg("failed to create query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "savedCiphertextRepository.ListActive").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing saved ciphertexts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SavedCiphertext, 0, 16)

	for rows.Next() {
		record, scanErr := scanSavedCiphertext(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "savedCiphertextRepository.ListActive").
				Str("owner_id", ownerID).
				Msg("failed to scan saved ciphertext row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "savedCiphertextRepository.ListActive").
			Str("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (r *savedCiphertextRepository) GetActive(ctx context.Context, id, ownerID string) (models.SavedCiphertext, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetActiveSavedCiphertextQuery(r.builder(), id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "savedCiphertextRepository.GetActive").Msg("failed to create query")
		return models.SavedCiphertext{}, err
	}

	var record models.SavedCiphertext
	err = r.withRetry(ctx, func() error {
		var scanErr error
		record, scanErr = scanSavedCiphertext(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedCiphertext{}, ErrSavedCiphertextNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "savedCiphertextRepository.GetActive").
			Str("id", id).
			Str("owner_id", ownerID).
			Msg("failed to load saved ciphertext")
		return models.SavedCiphertext{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *savedCiphertextRepository) SoftDelete(ctx context.Context, id, ownerID string, deletedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteSavedCiphertextQuery(r.builder(), id, ownerID, deletedAt)
	if err != nil {
		log.Err(err).Str("func", "savedCiphertextRepository.SoftDelete").Msg("failed to create query")
		return err
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "savedCiphertextRepository.SoftDelete").
			Str("id", id).
			Str("owner_id", ownerID).
			Msg("failed to execute soft delete for saved ciphertext")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		log.Debug().
			Str("func", "savedCiphertextRepository.SoftDelete").
			Str("id", id).
			Str("owner_id", ownerID).
			Msg("no active record matched")
		return ErrSavedCiphertextNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedCiphertext(row rowScanner) (models.SavedCiphertext, error) {
	var record models.SavedCiphertext

	err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&record.OwnerEmail,
		&record.Name,
		&record.Ciphertext,
		&record.PrivateKey,
		&record.CreatedAt,
		&record.DeletedAt,
	)
	if err != nil {
		return models.SavedCiphertext{}, err
	}

	record.CreatedAt = record.CreatedAt.UTC()
	return record, nil
}
