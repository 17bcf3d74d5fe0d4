package crypto

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCache_ReturnsSameParsedKey(t *testing.T) {
	kp := keyPair(t, models.KeySize1024)
	c := NewKeyCache(time.Minute)

	first, err := c.PublicKey(kp.PublicKey)
	require.NoError(t, err)
	second, err := c.PublicKey(kp.PublicKey)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestKeyCache_SeparatesPublicAndPrivate(t *testing.T) {
	kp := keyPair(t, models.KeySize1024)
	c := NewKeyCache(time.Minute)

	_, err := c.PublicKey(kp.PublicKey)
	require.NoError(t, err)
	_, err = c.PrivateKey(kp.PrivateKey)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
}

func TestKeyCache_DoesNotCacheFailures(t *testing.T) {
	c := NewKeyCache(time.Minute)

	_, err := c.PrivateKey("broken")
	assert.ErrorIs(t, err, ErrMalformedKey)
	assert.Equal(t, 0, c.Len())
}

func TestKeyCache_ConcurrentLookups(t *testing.T) {
	kp := keyPair(t, models.KeySize2048)
	c := NewKeyCache(time.Minute)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.PrivateKey(kp.PrivateKey)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
}

func TestKeyCache_Expiry(t *testing.T) {
	kp := keyPair(t, models.KeySize1024)
	c := NewKeyCache(20 * time.Millisecond)

	first, err := c.PublicKey(kp.PublicKey)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	second, err := c.PublicKey(kp.PublicKey)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
