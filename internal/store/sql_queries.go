package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rsa-vault/models"
)

const savedCiphertextsTable = "saved_ciphertexts"

var savedCiphertextColumns = []string{
	"id",
	"owner_id",
	"owner_email",
	"name",
	"ciphertext",
	"private_key",
	"created_at",
	"deleted_at",
}

func buildInsertSavedCiphertextQuery(b sq.StatementBuilderType, record models.SavedCiphertext) (string, []any, error) {
	query, args, err := b.Insert(savedCiphertextsTable).
		Columns(savedCiphertextColumns...).
		Values(
			record.ID,
			record.OwnerID,
			record.OwnerEmail,
			record.Name,
			record.Ciphertext,
			record.PrivateKey,
			record.CreatedAt,
			record.DeletedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListActiveSavedCiphertextsQuery orders newest first; id breaks ties
// between records created within the same timestamp.
func buildListActiveSavedCiphertextsQuery(b sq.StatementBuilderType, ownerID string) (string, []any, error) {
	query, args, err := b.Select(savedCiphertextColumns...).
		From(savedCiphertextsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetActiveSavedCiphertextQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	query, args, err := b.Select(savedCiphertextColumns...).
		From(savedCiphertextsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSoftDeleteSavedCiphertextQuery is the single conditional statement
// behind active -> deleted. A record already deleted matches no rows.
func buildSoftDeleteSavedCiphertextQuery(b sq.StatementBuilderType, id, ownerID string, deletedAt time.Time) (string, []any, error) {
	query, args, err := b.Update(savedCiphertextsTable).
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"owner_id": ownerID}).
		Where(sq.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
