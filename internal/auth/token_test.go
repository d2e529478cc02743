package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, jti, err := GenerateToken(42, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	userID, parsedJTI, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
	assert.Equal(t, jti, parsedJTI)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(42, testSecret)
	require.NoError(t, err)

	_, _, err = ParseToken(token, "a different secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, _, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestGenerateTokenUniqueJTI(t *testing.T) {
	_, jti1, err := GenerateToken(1, testSecret)
	require.NoError(t, err)
	_, jti2, err := GenerateToken(1, testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2)
}

func TestExtractToken(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
		assert.Equal(t, "from-cookie", ExtractToken(r))
	})

	t.Run("bearer header", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-header", ExtractToken(r))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
		r.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-cookie", ExtractToken(r))
	})

	t.Run("malformed header", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Equal(t, "", ExtractToken(r))
	})

	t.Run("nothing", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", ExtractToken(r))
	})
}
