package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestKeySize(t *testing.T) {
	assert.True(t, KeySize1024.Valid())
	assert.True(t, KeySize2048.Valid())
	assert.False(t, KeySize(4096).Valid())
	assert.Equal(t, 256, DefaultKeySize.Bytes())
}

func TestSavedCiphertext_View(t *testing.T) {
	rec := SavedCiphertext{ID: "1", OwnerID: "o", Name: "n", Ciphertext: "c", PrivateKey: "k"}

	assert.True(t, rec.Active())
	assert.Equal(t, SavedCiphertextView{ID: "1", Name: "n", Ciphertext: "c"}, rec.View())
}
