package validators

import (
	"context"
	"encoding/pem"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldKeySize targets the requested RSA modulus length.
	FieldKeySize = "key_size"

	// FieldPublicKey targets a PEM public key.
	FieldPublicKey = "public_key"

	// FieldPrivateKey targets a PEM private key.
	FieldPrivateKey = "private_key"

	// FieldPlaintext targets the text to encrypt.
	FieldPlaintext = "plaintext"

	// FieldCiphertext targets a base64 ciphertext.
	FieldCiphertext = "ciphertext"

	// FieldName targets the display name of a saved ciphertext.
	FieldName = "name"

	// FieldRecordID targets the identifier of a saved ciphertext.
	FieldRecordID = "record_id"
)

// privateKeyBlockTypes lists the PEM block types accepted for private keys.
var privateKeyBlockTypes = map[string]struct{}{
	"PRIVATE KEY":     {},
	"RSA PRIVATE KEY": {},
}

// RequestValidator implements the Validator interface for every request model
// of the crypto and vault routes.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.GenerateKeyRequest
//   - models.EncryptRequest
//   - models.DecryptRequest
//   - models.AvalancheRequest
//   - models.CreateSavedCiphertextRequest
//   - models.SavedCiphertextRef
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerateKeyRequest:
		return v.validateGenerateKeyRequest(value, fields...)
	case *models.GenerateKeyRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateGenerateKeyRequest(*value, fields...)
	case models.EncryptRequest:
		return v.validatePlaintextRequest(value.PublicKey, value.Plaintext, fields...)
	case *models.EncryptRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePlaintextRequest(value.PublicKey, value.Plaintext, fields...)
	case models.AvalancheRequest:
		return v.validatePlaintextRequest(value.PublicKey, value.Plaintext, fields...)
	case *models.AvalancheRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePlaintextRequest(value.PublicKey, value.Plaintext, fields...)
	case models.DecryptRequest:
		return v.validateDecryptRequest(value, fields...)
	case *models.DecryptRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDecryptRequest(*value, fields...)
	case models.CreateSavedCiphertextRequest:
		return v.validateCreateSavedCiphertextRequest(value, fields...)
	case *models.CreateSavedCiphertextRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateSavedCiphertextRequest(*value, fields...)
	case models.SavedCiphertextRef:
		return v.validateSavedCiphertextRef(value, fields...)
	case *models.SavedCiphertextRef:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSavedCiphertextRef(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// A nil key size is valid: the service substitutes models.DefaultKeySize.
func (v *RequestValidator) validateGenerateKeyRequest(request models.GenerateKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeySize}
	}

	for _, f := range fields {
		switch f {
		case FieldKeySize:
			if request.KeySize != nil && !models.KeySize(*request.KeySize).Valid() {
				return ErrInvalidKeySize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePlaintextRequest(publicKey, plaintext string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey, FieldPlaintext}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if publicKey == "" {
				return ErrPublicKeyAndPlaintextRequired
			}
		case FieldPlaintext:
			if plaintext == "" {
				return ErrPublicKeyAndPlaintextRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDecryptRequest(request models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrivateKey, FieldCiphertext}
	}

	for _, f := range fields {
		switch f {
		case FieldPrivateKey:
			if request.PrivateKey == "" {
				return ErrPrivateKeyAndCiphertextRequired
			}
		case FieldCiphertext:
			if request.Ciphertext == "" {
				return ErrPrivateKeyAndCiphertextRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateSavedCiphertextRequest(request models.CreateSavedCiphertextRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCiphertext, FieldPrivateKey}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(request.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > models.MaxSavedCiphertextNameLength {
				return ErrNameTooLong
			}
		case FieldCiphertext:
			if strings.TrimSpace(request.Ciphertext) == "" {
				return ErrEmptyCiphertext
			}
		case FieldPrivateKey:
			if strings.TrimSpace(request.PrivateKey) == "" {
				return ErrEmptyPrivateKey
			}
			if !isPrivateKeyPEM(request.PrivateKey) {
				return ErrInvalidPrivateKeyPEM
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSavedCiphertextRef(ref models.SavedCiphertextRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if _, err := uuid.Parse(ref.ID); err != nil {
				return ErrInvalidRecordID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isPrivateKeyPEM checks PEM framing only; the DER body is not parsed.
func isPrivateKeyPEM(text string) bool {
	block, _ := pem.Decode([]byte(strings.TrimSpace(text)))
	if block == nil || len(block.Bytes) == 0 {
		return false
	}
	_, ok := privateKeyBlockTypes[block.Type]
	return ok
}
