package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKey(t *testing.T) {
	fullKey, keyPrefix, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fullKey, "pfk_"))
	assert.True(t, strings.HasPrefix(fullKey, keyPrefix))

	// "pfk_" plus the first 8 characters of the encoded key
	assert.Len(t, keyPrefix, 12)

	// 32 random bytes base64url-encoded without padding
	assert.Len(t, fullKey, len("pfk_")+43)
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		fullKey, _, err := GenerateAPIKey()
		require.NoError(t, err)
		assert.False(t, seen[fullKey], "duplicate key generated")
		seen[fullKey] = true
	}
}

func TestHashAPIKey_RoundTrip(t *testing.T) {
	fullKey, _, err := GenerateAPIKey()
	require.NoError(t, err)

	hash, err := HashAPIKey(fullKey)
	require.NoError(t, err)
	assert.NotEqual(t, fullKey, hash)

	assert.NoError(t, CompareAPIKeyHash(fullKey, hash))
	assert.Error(t, CompareAPIKeyHash(fullKey+"x", hash))
}
