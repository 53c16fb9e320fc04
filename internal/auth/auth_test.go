package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "admin", "admin", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestCheckAdminPassword(t *testing.T) {
	// plain configured value, constant-time path
	assert.True(t, CheckAdminPassword("s3cret", "s3cret"))
	assert.False(t, CheckAdminPassword("wrong", "s3cret"))

	// bcrypt-hashed configured value
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckAdminPassword("s3cret", hash))
	assert.False(t, CheckAdminPassword("wrong", hash))
}

func TestParseTTL(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseTTL("2h"))
	assert.Equal(t, DefaultTokenTTL, ParseTTL(""))
	assert.Equal(t, DefaultTokenTTL, ParseTTL("30d")) // not a Go duration
	assert.Equal(t, DefaultTokenTTL, ParseTTL("-1h"))
}
