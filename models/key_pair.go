package models

// KeySize is the RSA modulus length in bits.
type KeySize int

const (
	KeySize1024 KeySize = 1024
	KeySize2048 KeySize = 2048

	// DefaultKeySize is used when a generate request omits keySize.
	DefaultKeySize = KeySize2048
)

// Valid reports whether the size is one of the supported modulus lengths.
func (k KeySize) Valid() bool {
	return k == KeySize1024 || k == KeySize2048
}

// Bytes returns the modulus length in bytes.
func (k KeySize) Bytes() int {
	return int(k) / 8
}

// KeyPair is a freshly generated RSA key pair in PEM form.
//
// PublicKey is a SubjectPublicKeyInfo "PUBLIC KEY" block and PrivateKey is an
// unencrypted PKCS#8 "PRIVATE KEY" block. Both are immutable once produced.
type KeyPair struct {
	PublicKey  string  `json:"public_key"`
	PrivateKey string  `json:"private_key"`
	KeySize    KeySize `json:"key_size"`
}

// GenerateKeyRequest is the body of POST /api/generate.
// A nil KeySize means the caller did not specify one.
type GenerateKeyRequest struct {
	KeySize *int `json:"keySize,omitempty"`
}
