package crypto

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultKeyCacheTTL keeps parsed keys around long enough for a
	// generate-encrypt-decrypt round in the UI and no longer.
	DefaultKeyCacheTTL = time.Minute

	publicKeyPrefix  = "pub:"
	privateKeyPrefix = "priv:"
)

// KeyCache memoizes PEM parsing. Entries are keyed by the SHA-256 of the PEM
// text, so raw key material never becomes a map key. Concurrent misses for
// the same PEM are collapsed into one parse.
type KeyCache struct {
	keys *cache.Cache
	sf   singleflight.Group
}

// NewKeyCache returns a cache whose entries expire after ttl. A non-positive
// ttl falls back to [DefaultKeyCacheTTL].
func NewKeyCache(ttl time.Duration) *KeyCache {
	if ttl <= 0 {
		ttl = DefaultKeyCacheTTL
	}

	return &KeyCache{
		keys: cache.New(ttl, 2*ttl),
	}
}

// PublicKey parses an RSA public key. PKIX "PUBLIC KEY" and PKCS#1
// "RSA PUBLIC KEY" blocks are both accepted.
func (c *KeyCache) PublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	key, err := c.load(publicKeyPrefix, publicKeyPEM, func() (any, error) {
		return jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	})
	if err != nil {
		return nil, err
	}

	return key.(*rsa.PublicKey), nil
}

// PrivateKey parses an unencrypted RSA private key. PKCS#8 "PRIVATE KEY" and
// PKCS#1 "RSA PRIVATE KEY" blocks are both accepted.
func (c *KeyCache) PrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	key, err := c.load(privateKeyPrefix, privateKeyPEM, func() (any, error) {
		return jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	})
	if err != nil {
		return nil, err
	}

	return key.(*rsa.PrivateKey), nil
}

// Len returns the number of cached keys, expired entries included until the
// next janitor run.
func (c *KeyCache) Len() int {
	return c.keys.ItemCount()
}

func (c *KeyCache) load(prefix, pemText string, parse func() (any, error)) (any, error) {
	cacheKey := prefix + utils.Fingerprint(pemText)

	if key, ok := c.keys.Get(cacheKey); ok {
		return key, nil
	}

	key, err, _ := c.sf.Do(cacheKey, func() (any, error) {
		parsed, err := parse()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
		}

		c.keys.SetDefault(cacheKey, parsed)
		return parsed, nil
	})

	return key, err
}

