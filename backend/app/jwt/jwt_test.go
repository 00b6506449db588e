package jwtutil

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func newSigner(now time.Time) *Signer {
	return &Signer{Secret: []byte("super-secret"), Issuer: "pokedex-api", TTL: time.Hour, Now: fixedClock(now)}
}

func TestSignAndParse_Success(t *testing.T) {
	t.Parallel()

	s := newSigner(time.Unix(1_700_000_000, 0))
	id := Identity{ID: "u-1", Username: "alice", Role: "user"}

	tok, err := s.Sign(id)
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.User)
	assert.Equal(t, "pokedex-api", claims.Issuer)
	assert.Equal(t, time.Unix(1_700_000_000, 0).Add(time.Hour), claims.ExpiresAt.Time)
}

func TestParse_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	tok, err := newSigner(issued).Sign(Identity{ID: "u-1", Username: "alice", Role: "user"})
	require.NoError(t, err)

	before := newSigner(issued.Add(time.Hour - time.Second))
	_, err = before.Parse(tok)
	assert.NoError(t, err)

	after := newSigner(issued.Add(time.Hour + time.Second))
	_, err = after.Parse(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	tok, err := newSigner(now).Sign(Identity{ID: "u-2"})
	require.NoError(t, err)

	other := newSigner(now)
	other.Secret = []byte("wrong-secret")
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParse_TamperedSignature(t *testing.T) {
	t.Parallel()

	s := newSigner(time.Unix(1_700_000_000, 0))
	tok, err := s.Sign(Identity{ID: "u-3", Username: "bob", Role: "user"})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	_, err = s.Parse(parts[0] + "." + parts[1] + "." + string(sig))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := newSigner(time.Unix(1_700_000_000, 0))
	for _, in := range []string{"", "not.a.jwt", "abc"} {
		_, err := s.Parse(in)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := newSigner(now)
	claims := Claims{
		User: Identity{ID: "u-4", Role: "admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.Secret)
	require.NoError(t, err)

	_, err = s.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := newSigner(now)
	other := newSigner(now)
	other.Issuer = "someone-else"
	tok, err := other.Sign(Identity{ID: "u-5"})
	require.NoError(t, err)

	_, err = s.Parse(tok)
	assert.ErrorIs(t, err, ErrMalformed)
}
