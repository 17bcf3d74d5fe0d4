package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKeySize                  = errors.New("key size must be either 1024 or 2048 bits")
	ErrPublicKeyAndPlaintextRequired   = errors.New("public key and plaintext are required")
	ErrPrivateKeyAndCiphertextRequired = errors.New("private key and ciphertext are required")

	ErrEmptyName            = errors.New("name is required")
	ErrNameTooLong          = errors.New("name must be at most 255 characters")
	ErrEmptyCiphertext      = errors.New("ciphertext is required")
	ErrEmptyPrivateKey      = errors.New("private key is required")
	ErrInvalidPrivateKeyPEM = errors.New("private key must be a PEM-encoded RSA private key")
	ErrInvalidRecordID      = errors.New("invalid saved ciphertext id")
)
