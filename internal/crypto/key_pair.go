package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/MKhiriev/go-rsa-vault/models"
)

const (
	pemTypePublicKey  = "PUBLIC KEY"
	pemTypePrivateKey = "PRIVATE KEY"
)

type keyPairGenerator struct{}

// NewKeyPairGenerator returns a [KeyPairGenerator] backed by crypto/rsa.
// rsa.GenerateKey always uses the public exponent 65537.
func NewKeyPairGenerator() KeyPairGenerator {
	return &keyPairGenerator{}
}

func (g *keyPairGenerator) Generate(keySize models.KeySize) (models.KeyPair, error) {
	if !keySize.Valid() {
		return models.KeyPair{}, ErrInvalidKeySize
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, int(keySize))
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error generating RSA key: %w", err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error marshaling private key: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("error marshaling public key: %w", err)
	}

	return models.KeyPair{
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: pemTypePublicKey, Bytes: publicDER})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: privateDER})),
		KeySize:    keySize,
	}, nil
}
