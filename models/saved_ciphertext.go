package models

import "time"

// MaxSavedCiphertextNameLength bounds the display name, in characters.
const MaxSavedCiphertextNameLength = 255

// SavedCiphertext is one vault record: a ciphertext kept together with the
// private key that decrypts it.
//
// A record is owned by exactly one caller (OwnerID). It is active while
// DeletedAt is nil; the only mutation ever applied is the single transition
// to deleted. PrivateKey may hold a sealed envelope instead of raw PEM when
// at-rest key protection is enabled.
type SavedCiphertext struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"-"`
	OwnerEmail string     `json:"-"`
	Name       string     `json:"name"`
	Ciphertext string     `json:"ciphertext"`
	PrivateKey string     `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"-"`
}

// Active reports whether the record has not been deleted.
func (s SavedCiphertext) Active() bool {
	return s.DeletedAt == nil
}

// CreateSavedCiphertextRequest is the body of POST /api/saved-ciphertexts.
type CreateSavedCiphertextRequest struct {
	Name       string `json:"name"`
	Ciphertext string `json:"ciphertext"`
	PrivateKey string `json:"privateKey"`
}

// SavedCiphertextView is the public projection of a record returned by the
// vault routes. It never includes the private key.
type SavedCiphertextView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Ciphertext string    `json:"ciphertext"`
	CreatedAt  time.Time `json:"created_at"`
}

// View projects the record onto its public fields.
func (s SavedCiphertext) View() SavedCiphertextView {
	return SavedCiphertextView{
		ID:         s.ID,
		Name:       s.Name,
		Ciphertext: s.Ciphertext,
		CreatedAt:  s.CreatedAt,
	}
}

// SavedCiphertextRef addresses one record on behalf of its owner.
type SavedCiphertextRef struct {
	ID      string
	OwnerID string
}
