package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)
	tok, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)

	id, ok := svc.VerifyOptional(tok)
	assert.True(t, ok)
	assert.Equal(t, "user-123", id)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("secret", 0)
	svc.now = func() time.Time { return issuedAt }

	tok, err := svc.Issue("u1")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(tok)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(DefaultTokenTTL + time.Second) }
	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, ok := svc.VerifyOptional(tok)
	assert.False(t, ok)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("u3")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := svc.Issue("someone-else")
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k", time.Hour)
	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, ok := svc.VerifyOptional("")
	assert.False(t, ok)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := "secret"
	claims := jwt.RegisteredClaims{
		Subject:   "u4",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RequiresExpiryAndSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u5"}).SignedString(secret)
	require.NoError(t, err)
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	require.NoError(t, err)

	svc := NewTokenService(string(secret), time.Hour)
	_, err = svc.Verify(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.Verify(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
