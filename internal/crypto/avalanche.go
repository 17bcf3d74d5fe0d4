package crypto

import (
	"encoding/hex"
	"math"
	"math/bits"

	"github.com/MKhiriev/go-rsa-vault/models"
)

// avalanchePrefix is prepended to the plaintext to produce the modified input.
const avalanchePrefix = "s"

type avalancheAnalyzer struct {
	cipher *oaepCipher
}

// NewAvalancheAnalyzer returns an [AvalancheAnalyzer] sharing the given key
// cache with the rest of the service.
func NewAvalancheAnalyzer(keys *KeyCache) AvalancheAnalyzer {
	return &avalancheAnalyzer{cipher: newOAEPCipher(keys)}
}

func (a *avalancheAnalyzer) Analyze(publicKeyPEM, plaintext string) (models.AvalancheResult, error) {
	publicKey, err := a.cipher.keys.PublicKey(publicKeyPEM)
	if err != nil {
		return models.AvalancheResult{}, err
	}

	modified := avalanchePrefix + plaintext

	// the modified input is one byte longer, so checking it first covers both
	if len(modified) > MaxPlaintextLen(publicKey.Size()) {
		return models.AvalancheResult{}, ErrPlaintextTooLarge
	}

	original, err := a.cipher.encrypt([]byte(plaintext), publicKey)
	if err != nil {
		return models.AvalancheResult{}, err
	}

	changed, err := a.cipher.encrypt([]byte(modified), publicKey)
	if err != nil {
		return models.AvalancheResult{}, err
	}

	return models.AvalancheResult{
		ModifiedPlaintext: modified,
		AvalanchePercent:  BitDifferencePercent(original, changed),
		OriginalHex:       hex.EncodeToString(original),
		ModifiedHex:       hex.EncodeToString(changed),
	}, nil
}

// BitDifferencePercent returns the share of differing bits between a and b,
// in percent of the total bit length, rounded to two decimals. Both slices
// must have equal length; an empty input yields 0.
func BitDifferencePercent(a, b []byte) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	differing := 0
	for i := range a {
		differing += bits.OnesCount8(a[i] ^ b[i])
	}

	percent := float64(differing) * 100 / float64(len(a)*8)
	return math.Round(percent*100) / 100
}
