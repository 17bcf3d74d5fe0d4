package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-rsa-vault/internal/crypto"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/metrics"
	"github.com/MKhiriev/go-rsa-vault/internal/mock"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testKeyPair1024 = sync.OnceValues(func() (models.KeyPair, error) {
	return crypto.NewKeyPairGenerator().Generate(models.KeySize1024)
})

func realKeyPair(t *testing.T) models.KeyPair {
	t.Helper()
	kp, err := testKeyPair1024()
	require.NoError(t, err)
	return kp
}

func newRealCipherService() CipherService {
	keys := crypto.NewKeyCache(0)
	return NewCipherService(crypto.NewOAEPCipher(keys), crypto.NewAvalancheAnalyzer(keys), testLane(), metrics.Nop(), logger.Nop())
}

// ─────────────────────────────────────────────
// Encrypt / Decrypt with mocks
// ─────────────────────────────────────────────

func TestCipherService_Encrypt_PassesPlaintextBytes(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewCipherService(cipher, mock.NewMockAvalancheAnalyzer(ctrl), testLane(), metrics.Nop(), logger.Nop())

	cipher.EXPECT().Encrypt([]byte("héllo"), "pub").Return("Y2lwaGVy", nil)

	resp, err := svc.Encrypt(context.Background(), models.EncryptRequest{Plaintext: "héllo", PublicKey: "pub"})

	require.NoError(t, err)
	assert.Equal(t, "Y2lwaGVy", resp.Ciphertext)
}

func TestCipherService_Encrypt_ClassifiesErrors(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		kind  error
	}{
		{"malformed key", crypto.ErrMalformedKey, ErrEncoding},
		{"too large", crypto.ErrPlaintextTooLarge, ErrCrypto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cipher := mock.NewMockCipher(ctrl)
			svc := NewCipherService(cipher, mock.NewMockAvalancheAnalyzer(ctrl), testLane(), metrics.Nop(), logger.Nop())

			cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return("", tt.cause)

			_, err := svc.Encrypt(context.Background(), models.EncryptRequest{Plaintext: "x", PublicKey: "k"})

			require.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestCipherService_Decrypt_NonUTF8IsEncodingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewCipherService(cipher, mock.NewMockAvalancheAnalyzer(ctrl), testLane(), metrics.Nop(), logger.Nop())

	cipher.EXPECT().Decrypt("AAAA", "priv").Return([]byte{0xff, 0xfe, 0xfd}, nil)

	_, err := svc.Decrypt(context.Background(), models.DecryptRequest{Ciphertext: "AAAA", PrivateKey: "priv"})

	require.ErrorIs(t, err, ErrEncoding)
	assert.ErrorIs(t, err, crypto.ErrInvalidPlaintextEncoding)
}

func TestCipherService_Decrypt_FailureIsOpaqueCryptoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	svc := NewCipherService(cipher, mock.NewMockAvalancheAnalyzer(ctrl), testLane(), metrics.Nop(), logger.Nop())

	cipher.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrDecryptionFailed)

	_, err := svc.Decrypt(context.Background(), models.DecryptRequest{Ciphertext: "AAAA", PrivateKey: "priv"})

	require.ErrorIs(t, err, ErrCrypto)
	assert.Equal(t, "crypto error: decryption failed", err.Error())
}

func TestCipherService_Avalanche_DelegatesToAnalyzer(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mock.NewMockAvalancheAnalyzer(ctrl)
	svc := NewCipherService(mock.NewMockCipher(ctrl), analyzer, testLane(), metrics.Nop(), logger.Nop())

	want := models.AvalancheResult{ModifiedPlaintext: "sabc", AvalanchePercent: 49.61}
	analyzer.EXPECT().Analyze("pub", "abc").Return(want, nil)

	got, err := svc.Avalanche(context.Background(), models.AvalancheRequest{PublicKey: "pub", Plaintext: "abc"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ─────────────────────────────────────────────
// Real RSA round trips
// ─────────────────────────────────────────────

func TestCipherService_RoundTrip(t *testing.T) {
	kp := realKeyPair(t)
	svc := newRealCipherService()
	ctx := context.Background()

	for _, plaintext := range []string{
		"Hello, RSA!",
		"Привет, мир",
		"🔐 ключ",
		strings.Repeat("a", crypto.MaxPlaintextLen(models.KeySize1024.Bytes())),
	} {
		enc, err := svc.Encrypt(ctx, models.EncryptRequest{Plaintext: plaintext, PublicKey: kp.PublicKey})
		require.NoError(t, err)

		dec, err := svc.Decrypt(ctx, models.DecryptRequest{Ciphertext: enc.Ciphertext, PrivateKey: kp.PrivateKey})
		require.NoError(t, err)
		assert.Equal(t, plaintext, dec.Plaintext)
	}
}

func TestCipherService_Encrypt_OversizeRejected(t *testing.T) {
	kp := realKeyPair(t)
	svc := newRealCipherService()

	oversize := strings.Repeat("a", crypto.MaxPlaintextLen(models.KeySize1024.Bytes())+1)
	_, err := svc.Encrypt(context.Background(), models.EncryptRequest{Plaintext: oversize, PublicKey: kp.PublicKey})

	require.ErrorIs(t, err, ErrCrypto)
	assert.ErrorIs(t, err, crypto.ErrPlaintextTooLarge)
}

func TestCipherService_Avalanche_PercentInRange(t *testing.T) {
	kp := realKeyPair(t)
	svc := newRealCipherService()

	res, err := svc.Avalanche(context.Background(), models.AvalancheRequest{PublicKey: kp.PublicKey, Plaintext: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "shello", res.ModifiedPlaintext)
	assert.GreaterOrEqual(t, res.AvalanchePercent, 0.0)
	assert.LessOrEqual(t, res.AvalanchePercent, 100.0)
	assert.Len(t, res.OriginalHex, 2*models.KeySize1024.Bytes())
}
