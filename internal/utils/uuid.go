package utils

import "github.com/google/uuid"

// RecordIDs hands out saved ciphertext ids. Ids are UUIDv7 so that records
// created within the same millisecond still sort in creation order.
type RecordIDs struct{}

func NewRecordIDs() *RecordIDs {
	return &RecordIDs{}
}

// Next returns a fresh record id. A random v4 id is used when the clock
// source for v7 fails.
func (RecordIDs) Next() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
