// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks a stored value produced by [keySealer.Seal]. Values
// without it are plain PEM written while sealing was disabled.
const sealedPrefix = "sealed:v1:"

// defaultSealSalt is used when no salt is configured. A per-deployment salt
// is recommended but not required, since the secret is not a human password.
const defaultSealSalt = "go-rsa-vault/key-sealer"

// keySealer wraps stored private keys with AES-256-GCM under a key-encryption
// key derived once at construction.
type keySealer struct {
	kek []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeySealer derives a 256-bit KEK from secret and salt with Argon2id
// (1 iteration, 64 MiB, 4 threads) and returns a [KeySealer] using it.
//
// An empty secret yields a sealer that stores keys unchanged but can still
// recognise sealed values and report [ErrSealedKeyUnavailable] for them.
func NewKeySealer(secret, salt string) KeySealer {
	s := &keySealer{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}

	if secret == "" {
		return s
	}
	if salt == "" {
		salt = defaultSealSalt
	}

	s.kek = argon2.IDKey([]byte(secret), []byte(salt), s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
	return s
}

func (s *keySealer) Enabled() bool {
	return len(s.kek) > 0
}

// Seal returns sealedPrefix ‖ base64(nonce ‖ ciphertext).
func (s *keySealer) Seal(privateKeyPEM string) (string, error) {
	if !s.Enabled() {
		return privateKeyPEM, nil
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error reading nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(privateKeyPEM), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *keySealer) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if !s.Enabled() {
		return "", ErrSealedKeyUnavailable
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	if len(blob) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: sealed blob too short", ErrUnsealFailed)
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsealFailed, err)
	}

	return string(plaintext), nil
}

func (s *keySealer) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.kek)
	if err != nil {
		return nil, fmt.Errorf("error creating AES cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
