package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := NewTokenService("", "HS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenService("secret", "RS256", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenService("secret", "nonsense", time.Minute)
	assert.Error(t, err)

	svc, err := NewTokenService("secret", "HS512", time.Minute)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.CreateAccessToken("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenService_RejectsEmptyToken(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsMalformedToken(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsWrongSignature(t *testing.T) {
	svc := newTestTokenService(t)
	other, err := NewTokenService("different-secret", "HS256", 30*time.Minute)
	require.NoError(t, err)

	token, err := other.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)
	short := &TokenService{secret: svc.secret, method: svc.method, lifetime: time.Millisecond}

	token, err := short.CreateAccessToken("user@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
