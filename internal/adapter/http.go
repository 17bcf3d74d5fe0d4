package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/logger"
	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/go-resty/resty/v2"
)

// Identity headers understood by the server in header auth mode.
const (
	principalIDHeader   = "X-MS-CLIENT-PRINCIPAL-ID"
	principalNameHeader = "X-MS-CLIENT-PRINCIPAL-NAME"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// envelope mirrors models.Envelope with a typed payload.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at adapterCfg.HTTPAddress.
//
// A bearer token from authCfg is sent as "Authorization: Bearer"; the
// principal fields are sent as the proxy identity headers. Both are attached
// to every request and the server decides which one counts.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, authCfg config.ClientAuth, logger *logger.Logger) (ServerAdapter, error) {
	baseURL := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if baseURL == "" {
		return nil, fmt.Errorf("invalid adapter http address: %w", errEmptyAddress)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid adapter http address %q: missing host", adapterCfg.HTTPAddress)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if token := strings.TrimSpace(authCfg.Token); token != "" {
		client.SetAuthToken(token)
	}
	if authCfg.PrincipalID != "" {
		client.SetHeader(principalIDHeader, authCfg.PrincipalID)
	}
	if authCfg.PrincipalName != "" {
		client.SetHeader(principalNameHeader, authCfg.PrincipalName)
	}

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")
	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Generate implements [ServerAdapter]. It POSTs to /api/generate.
func (h *httpServerAdapter) Generate(ctx context.Context, keySize int) (models.KeyPair, error) {
	var req models.GenerateKeyRequest
	if keySize != 0 {
		req.KeySize = &keySize
	}
	return doJSON[models.KeyPair](ctx, h, resty.MethodPost, "/api/generate", req)
}

// Encrypt implements [ServerAdapter]. It POSTs to /api/encrypt.
func (h *httpServerAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	return doJSON[models.EncryptResponse](ctx, h, resty.MethodPost, "/api/encrypt", req)
}

// Decrypt implements [ServerAdapter]. It POSTs to /api/decrypt.
func (h *httpServerAdapter) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	return doJSON[models.DecryptResponse](ctx, h, resty.MethodPost, "/api/decrypt", req)
}

// Avalanche implements [ServerAdapter]. It POSTs to /api/avalanche.
func (h *httpServerAdapter) Avalanche(ctx context.Context, req models.AvalancheRequest) (models.AvalancheResult, error) {
	return doJSON[models.AvalancheResult](ctx, h, resty.MethodPost, "/api/avalanche", req)
}

// ListSavedCiphertexts implements [ServerAdapter]. It GETs
// /api/saved-ciphertexts.
func (h *httpServerAdapter) ListSavedCiphertexts(ctx context.Context) ([]models.SavedCiphertextView, error) {
	return doJSON[[]models.SavedCiphertextView](ctx, h, resty.MethodGet, "/api/saved-ciphertexts", nil)
}

// SaveCiphertext implements [ServerAdapter]. It POSTs to
// /api/saved-ciphertexts.
func (h *httpServerAdapter) SaveCiphertext(ctx context.Context, req models.CreateSavedCiphertextRequest) (models.SavedCiphertextView, error) {
	return doJSON[models.SavedCiphertextView](ctx, h, resty.MethodPost, "/api/saved-ciphertexts", req)
}

// DeleteSavedCiphertext implements [ServerAdapter]. It sends DELETE
// /api/saved-ciphertexts/{id}.
func (h *httpServerAdapter) DeleteSavedCiphertext(ctx context.Context, id string) error {
	_, err := doJSON[struct{}](ctx, h, resty.MethodDelete, "/api/saved-ciphertexts/"+url.PathEscape(id), nil)
	return err
}

// DecryptSavedCiphertext implements [ServerAdapter]. It POSTs to
// /api/saved-ciphertexts/{id}/decrypt.
func (h *httpServerAdapter) DecryptSavedCiphertext(ctx context.Context, id string) (models.DecryptResponse, error) {
	return doJSON[models.DecryptResponse](ctx, h, resty.MethodPost, "/api/saved-ciphertexts/"+url.PathEscape(id)+"/decrypt", nil)
}

// Version implements [ServerAdapter]. The version route answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// doJSON sends body (if any) to path and unwraps the response envelope into T.
func doJSON[T any](ctx context.Context, h *httpServerAdapter, method, path string, body any) (T, error) {
	var (
		zero T
		env  envelope[T]
	)

	req := h.client.R().
		SetContext(ctx).
		SetResult(&env)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("server responded")

	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}
	if !env.Success {
		return zero, fmt.Errorf("%w: %s %s", ErrUnexpectedResponse, method, path)
	}

	return env.Data, nil
}
