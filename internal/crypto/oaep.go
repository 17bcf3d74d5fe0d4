package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// oaepHashLen is the SHA-256 output length used by both the OAEP hash and MGF1.
const oaepHashLen = sha256.Size

// MaxPlaintextLen returns the OAEP-SHA-256 payload limit for a modulus of
// modulusBytes bytes: k - 2*hLen - 2. That is 62 bytes for 1024-bit keys and
// 190 bytes for 2048-bit keys.
func MaxPlaintextLen(modulusBytes int) int {
	n := modulusBytes - 2*oaepHashLen - 2
	if n < 0 {
		return 0
	}
	return n
}

type oaepCipher struct {
	keys *KeyCache
}

// NewOAEPCipher returns a [Cipher] that resolves PEM keys through keys.
func NewOAEPCipher(keys *KeyCache) Cipher {
	return newOAEPCipher(keys)
}

func newOAEPCipher(keys *KeyCache) *oaepCipher {
	if keys == nil {
		keys = NewKeyCache(DefaultKeyCacheTTL)
	}
	return &oaepCipher{keys: keys}
}

func (c *oaepCipher) Encrypt(plaintext []byte, publicKeyPEM string) (string, error) {
	publicKey, err := c.keys.PublicKey(publicKeyPEM)
	if err != nil {
		return "", err
	}

	ciphertext, err := c.encrypt(plaintext, publicKey)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (c *oaepCipher) Decrypt(ciphertextB64, privateKeyPEM string) ([]byte, error) {
	privateKey, err := c.keys.PrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertextB64))
	if err != nil {
		return nil, ErrMalformedCiphertext
	}

	if len(ciphertext) != privateKey.Size() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, privateKey, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// encrypt returns the raw ciphertext, always exactly publicKey.Size() bytes.
func (c *oaepCipher) encrypt(plaintext []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if len(plaintext) > MaxPlaintextLen(publicKey.Size()) {
		return nil, ErrPlaintextTooLarge
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plaintext, nil)
	if err != nil {
		if errors.Is(err, rsa.ErrMessageTooLong) {
			return nil, ErrPlaintextTooLarge
		}
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}

	return ciphertext, nil
}
