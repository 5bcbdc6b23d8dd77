package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	a, err := NewAuthService("1234", "", "test-secret", time.Hour)
	require.NoError(t, err)
	a.now = func() time.Time { return fixedNow }

	token, expires, err := a.Login("1234")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour), expires)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, OfficerSubject, claims.Subject)
}

func TestAuthService_WrongKey(t *testing.T) {
	a, err := NewAuthService("admin", "", "test-secret", time.Hour)
	require.NoError(t, err)

	for _, key := range []string{"", "Admin", "admin ", "1234"} {
		_, _, err := a.Login(key)
		assert.ErrorIs(t, err, ErrInvalidCredentials, key)
	}
}

func TestAuthService_Hash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	a, err := NewAuthService("", string(hash), "test-secret", 0)
	require.NoError(t, err)

	_, _, err = a.Login("s3cret")
	assert.NoError(t, err)

	_, err = NewAuthService("", "not-a-hash", "test-secret", 0)
	assert.Error(t, err)

	_, err = NewAuthService("", "", "test-secret", 0)
	assert.Error(t, err)
}
