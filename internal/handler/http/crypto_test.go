package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/generate
// ─────────────────────────────────────────────

func TestGenerate_Success(t *testing.T) {
	var got models.GenerateKeyRequest
	svcs := newMockServices()
	svcs.KeyService = &mockKeyService{
		generateFn: func(_ context.Context, req models.GenerateKeyRequest) (models.KeyPair, error) {
			got = req
			return models.KeyPair{PublicKey: "pub", PrivateKey: "priv", KeySize: models.KeySize1024}, nil
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", `{"keySize":1024}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.KeySize)
	assert.Equal(t, 1024, *got.KeySize)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)
	assert.Empty(t, env.Error)

	var pair models.KeyPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	assert.Equal(t, models.KeyPair{PublicKey: "pub", PrivateKey: "priv", KeySize: 1024}, pair)
}

func TestGenerate_OmittedKeySizeStaysNil(t *testing.T) {
	var got models.GenerateKeyRequest
	svcs := newMockServices()
	svcs.KeyService = &mockKeyService{
		generateFn: func(_ context.Context, req models.GenerateKeyRequest) (models.KeyPair, error) {
			got = req
			return models.KeyPair{}, nil
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", `{}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got.KeySize)
}

func TestGenerate_InvalidKeySize(t *testing.T) {
	svcs := newMockServices()
	svcs.KeyService = &mockKeyService{
		generateFn: func(context.Context, models.GenerateKeyRequest) (models.KeyPair, error) {
			return models.KeyPair{}, fmt.Errorf("%w: %w", service.ErrValidation, crypto.ErrInvalidKeySize)
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/generate", `{"keySize":512}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "key size must be either 1024 or 2048 bits", env.Error)
	assert.Empty(t, env.Data)
}

func TestCryptoRoutes_InvalidJSON(t *testing.T) {
	router := newTestHandler(newMockServices()).Init()

	for _, path := range []string{"/api/generate", "/api/encrypt", "/api/decrypt", "/api/avalanche"} {
		t.Run(path, func(t *testing.T) {
			for _, body := range []string{"", "{", "[1,2]", `"text"`} {
				rec := doRequest(t, router, http.MethodPost, path, body, nil)

				require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
				env := decodeEnvelope(t, rec)
				assert.False(t, env.Success)
				assert.Contains(t, env.Error, ErrInvalidJSON.Error())
			}
		})
	}
}

func TestCryptoRoutes_BodyTooLarge(t *testing.T) {
	router := newTestHandler(newMockServices()).Init()
	body := `{"plaintext":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rec := doRequest(t, router, http.MethodPost, "/api/encrypt", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error, "body exceeds")
}

// ─────────────────────────────────────────────
// POST /api/encrypt, /api/decrypt
// ─────────────────────────────────────────────

func TestEncrypt_Success(t *testing.T) {
	svcs := newMockServices()
	svcs.CipherService = &mockCipherService{
		encryptFn: func(_ context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
			assert.Equal(t, "hello", req.Plaintext)
			assert.Equal(t, "PEM", req.PublicKey)
			return models.EncryptResponse{Ciphertext: "Y2lwaGVy"}, nil
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/encrypt", `{"plaintext":"hello","publicKey":"PEM"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"ciphertext":"Y2lwaGVy"}}`, rec.Body.String())
}

func TestEncrypt_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"malformed key", fmt.Errorf("%w: %w", service.ErrEncoding, crypto.ErrMalformedKey), http.StatusBadRequest, "malformed PEM key"},
		{"too large", fmt.Errorf("%w: %w", service.ErrCrypto, crypto.ErrPlaintextTooLarge), http.StatusUnprocessableEntity, "plaintext too large for key size"},
		{"internal", assert.AnError, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newMockServices()
			svcs.CipherService = &mockCipherService{
				encryptFn: func(context.Context, models.EncryptRequest) (models.EncryptResponse, error) {
					return models.EncryptResponse{}, tt.err
				},
			}
			router := newTestHandler(svcs).Init()

			rec := doRequest(t, router, http.MethodPost, "/api/encrypt", `{"plaintext":"x","publicKey":"k"}`, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}

func TestDecrypt_Success(t *testing.T) {
	svcs := newMockServices()
	svcs.CipherService = &mockCipherService{
		decryptFn: func(_ context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
			assert.Equal(t, "Y3Q=", req.Ciphertext)
			assert.Equal(t, "PRIV", req.PrivateKey)
			return models.DecryptResponse{Plaintext: "héllo"}, nil
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/decrypt", `{"ciphertext":"Y3Q=","privateKey":"PRIV"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"plaintext":"héllo"}}`, rec.Body.String())
}

func TestDecrypt_FailureIsOpaque(t *testing.T) {
	svcs := newMockServices()
	svcs.CipherService = &mockCipherService{
		decryptFn: func(context.Context, models.DecryptRequest) (models.DecryptResponse, error) {
			return models.DecryptResponse{}, fmt.Errorf("%w: %w: %w", service.ErrCrypto, crypto.ErrDecryptionFailed, assert.AnError)
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/decrypt", `{"ciphertext":"Y3Q=","privateKey":"PRIV"}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"decryption failed"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /api/avalanche
// ─────────────────────────────────────────────

func TestAvalanche_Success(t *testing.T) {
	svcs := newMockServices()
	svcs.CipherService = &mockCipherService{
		avalancheFn: func(_ context.Context, req models.AvalancheRequest) (models.AvalancheResult, error) {
			return models.AvalancheResult{
				ModifiedPlaintext: "s" + req.Plaintext,
				AvalanchePercent:  49.8,
				OriginalHex:       "00ff",
				ModifiedHex:       "ff00",
			}, nil
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/avalanche", `{"plaintext":"abc","publicKey":"k"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"modified_plaintext":"sabc",
		"avalanche_percent":49.8,
		"original_hex":"00ff",
		"modified_hex":"ff00"
	}}`, rec.Body.String())
}

func TestAvalanche_ValidationError(t *testing.T) {
	svcs := newMockServices()
	svcs.CipherService = &mockCipherService{
		avalancheFn: func(context.Context, models.AvalancheRequest) (models.AvalancheResult, error) {
			return models.AvalancheResult{}, fmt.Errorf("%w: public key and plaintext are required", service.ErrValidation)
		},
	}
	router := newTestHandler(svcs).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/avalanche", `{}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"public key and plaintext are required"}`, rec.Body.String())
}
