package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"socialapi/internal/config"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-password"))
	assert.ErrorIs(t, h.Compare(hash, "wrong-password"), ErrPasswordMismatch)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}

func newTestIssuer(t *testing.T, now time.Time) *JWTIssuer {
	t.Helper()
	j, err := NewJWTIssuer(config.JWTConfig{Secret: "test-secret", Issuer: "socialapi", TTL: time.Hour})
	require.NoError(t, err)
	j.now = func() time.Time { return now }
	return j
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	now := time.Now()
	j := newTestIssuer(t, now)

	tok, err := j.Issue(42, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.WithinDuration(t, now.Add(time.Hour), tok.ExpiresAt, time.Second)

	claims, err := j.Parse(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.MemberID)
	assert.Equal(t, "alice", claims.Nickname)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTIssuer_Parse_Rejects(t *testing.T) {
	now := time.Now()
	j := newTestIssuer(t, now)

	t.Run("expired", func(t *testing.T) {
		tok, err := j.Issue(1, "a")
		require.NoError(t, err)

		later := newTestIssuer(t, now.Add(2*time.Hour))
		_, err = later.Parse(tok.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := NewJWTIssuer(config.JWTConfig{Secret: "another", Issuer: "socialapi", TTL: time.Hour})
		require.NoError(t, err)
		tok, err := other.Issue(1, "a")
		require.NoError(t, err)

		_, err = j.Parse(tok.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{MemberID: 1, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "socialapi",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = j.Parse(unsigned)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := j.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := NewJWTIssuer(config.JWTConfig{})
	assert.Error(t, err)
}
