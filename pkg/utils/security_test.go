package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"tubehub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConfig(t *testing.T, accessExpireMinutes int) {
	t.Helper()

	yaml := `
app:
  name: tubehub-test
  mode: test
jwt:
  access_secret: test-access-secret
  refresh_secret: test-refresh-secret
  access_expire_minutes: ` + strconv.Itoa(accessExpireMinutes) + `
  refresh_expire_days: 10
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := config.Load(path)
	require.NoError(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	loadTestConfig(t, 30)

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	loadTestConfig(t, 30)

	token, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

// 两种令牌密钥独立，互换解析必须失败
func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	loadTestConfig(t, 30)

	access, err := GenerateAccessToken(42)
	require.NoError(t, err)
	refresh, err := GenerateRefreshToken(42)
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	loadTestConfig(t, 30)

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = ParseAccessToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	loadTestConfig(t, -1)

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
