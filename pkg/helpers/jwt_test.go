package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewJWTManager("segredo", time.Hour, "usuarios-api")

	tok, exp, err := m.Issue("ana", "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Login)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "usuarios-api", claims.Issuer)
}

func TestIssueWithoutClaims(t *testing.T) {
	m := NewJWTManager("segredo", 0, "")
	assert.Equal(t, time.Hour, m.TTL)

	tok, _, err := m.Issue("", "")
	require.NoError(t, err)
	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Login)
	assert.Empty(t, claims.Role)
}

func TestVerifyFailures(t *testing.T) {
	m := NewJWTManager("segredo", time.Hour, "")

	t.Run("missing", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, ErrTokenMissing)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := m.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("outro", time.Hour, "")
		tok, _, err := other.Issue("ana", "admin")
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
	t.Run("expired", func(t *testing.T) {
		claims := &Claims{
			Login: "ana",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
	t.Run("no exp", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Login: "ana", Role: "admin"}).SignedString(m.Secret)
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
	t.Run("other hmac alg", func(t *testing.T) {
		claims := &Claims{
			Login:            "ana",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(m.Secret)
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
	t.Run("alg none", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Login: "ana"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestVerifyIssuer(t *testing.T) {
	m := NewJWTManager("segredo", time.Hour, "usuarios-api")

	other := NewJWTManager("segredo", time.Hour, "outro-servico")
	tok, _, err := other.Issue("ana", "admin")
	require.NoError(t, err)
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	anon := NewJWTManager("segredo", time.Hour, "")
	tok, _, err = anon.Issue("ana", "admin")
	require.NoError(t, err)
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWithoutSecret(t *testing.T) {
	signer := NewJWTManager("segredo", time.Hour, "")
	tok, _, err := signer.Issue("ana", "admin")
	require.NoError(t, err)

	_, err = NewJWTManager("", time.Hour, "").Verify(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestBearerToken(t *testing.T) {
	tok, err := BearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = BearerToken("bearer xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = BearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = BearerToken("Bearer")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
