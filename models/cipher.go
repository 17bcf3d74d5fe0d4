package models

// Operation names an RSA primitive. It is used as a metrics label and to
// route work to a worker lane.
type Operation string

const (
	OperationGenerate  Operation = "generate"
	OperationEncrypt   Operation = "encrypt"
	OperationDecrypt   Operation = "decrypt"
	OperationAvalanche Operation = "avalanche"
)

// EncryptRequest is the body of POST /api/encrypt.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	PublicKey string `json:"publicKey"`
}

// EncryptResponse carries a standard base64 (padded) OAEP ciphertext.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest is the body of POST /api/decrypt.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	PrivateKey string `json:"privateKey"`
}

// DecryptResponse carries the recovered UTF-8 plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}
