package models

// AvalancheRequest is the body of POST /api/avalanche.
type AvalancheRequest struct {
	PublicKey string `json:"publicKey"`
	Plaintext string `json:"plaintext"`
}

// AvalancheResult reports how many ciphertext bits differ between the
// encryption of a plaintext and of the same plaintext with one extra leading
// character.
//
// AvalanchePercent is rounded to two decimals and always lies in [0, 100].
// OriginalHex and ModifiedHex are lowercase hex encodings of the raw
// ciphertexts.
type AvalancheResult struct {
	ModifiedPlaintext string  `json:"modified_plaintext"`
	AvalanchePercent  float64 `json:"avalanche_percent"`
	OriginalHex       string  `json:"original_hex"`
	ModifiedHex       string  `json:"modified_hex"`
}
