package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/stretchr/testify/require"
)

// Key generation dominates test time, so each size is generated once per run.
var (
	testKeys1024 = sync.OnceValues(func() (models.KeyPair, error) {
		return NewKeyPairGenerator().Generate(models.KeySize1024)
	})
	testKeys2048 = sync.OnceValues(func() (models.KeyPair, error) {
		return NewKeyPairGenerator().Generate(models.KeySize2048)
	})
)

func keyPair(t *testing.T, size models.KeySize) models.KeyPair {
	t.Helper()

	var (
		kp  models.KeyPair
		err error
	)
	switch size {
	case models.KeySize1024:
		kp, err = testKeys1024()
	default:
		kp, err = testKeys2048()
	}
	require.NoError(t, err)
	return kp
}

// pkcs1PEM re-encodes a PKCS#8 private key as PKCS#1 blocks.
func pkcs1PEM(t *testing.T, kp models.KeyPair) (publicPEM, privatePEM string) {
	t.Helper()

	block, _ := pem.Decode([]byte(kp.PrivateKey))
	require.NotNil(t, block)
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	key := parsed.(*rsa.PrivateKey)

	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(&key.PublicKey)}))
	privatePEM = string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
	return publicPEM, privatePEM
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}
