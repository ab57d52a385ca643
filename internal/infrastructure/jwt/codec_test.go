package jwtinfra

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/ainame-auth/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestCodec returns a codec whose clock reads *clock, so tests can move time.
func newTestCodec(secret string, clock *time.Time) *Codec {
	c := NewCodec(secret)
	c.now = func() time.Time { return *clock }
	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)

	for _, kind := range []domain.TokenKind{domain.TokenAccess, domain.TokenRefresh} {
		for _, uid := range []int64{1, 42, 1 << 40} {
			tok, err := c.Encode(uid, kind, time.Hour)
			require.NoError(t, err)

			got, err := c.Decode(tok, kind)
			require.NoError(t, err)
			assert.Equal(t, uid, got)
		}
	}
}

func TestCodec_ExpiredAfterTTL(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	tok, err := c.Encode(7, domain.TokenAccess, 30*time.Minute)
	require.NoError(t, err)

	now = t0.Add(29 * time.Minute)
	_, err = c.Decode(tok, domain.TokenAccess)
	require.NoError(t, err)

	now = t0.Add(30*time.Minute + time.Second)
	_, err = c.Decode(tok, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestCodec_ExpiredWinsOverKindMismatch(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	tok, err := c.Encode(7, domain.TokenAccess, time.Minute)
	require.NoError(t, err)

	now = t0.Add(time.Hour)
	_, err = c.Decode(tok, domain.TokenRefresh)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestCodec_KindMismatch(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)

	access, err := c.Encode(7, domain.TokenAccess, time.Hour)
	require.NoError(t, err)
	refresh, err := c.Encode(7, domain.TokenRefresh, time.Hour)
	require.NoError(t, err)

	_, err = c.Decode(access, domain.TokenRefresh)
	assert.ErrorIs(t, err, domain.ErrTokenTypeMismatch)
	_, err = c.Decode(refresh, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenTypeMismatch)
}

func TestCodec_WrongSecret(t *testing.T) {
	now := t0
	issuer := newTestCodec("secret-a", &now)
	verifier := newTestCodec("secret-b", &now)

	tok, err := issuer.Encode(7, domain.TokenAccess, time.Hour)
	require.NoError(t, err)

	uid, err := verifier.Decode(tok, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Zero(t, uid)
}

func TestCodec_WrongSecretAndExpired_IsInvalid(t *testing.T) {
	now := t0
	issuer := newTestCodec("secret-a", &now)
	verifier := newTestCodec("secret-b", &now)
	tok, err := issuer.Encode(7, domain.TokenAccess, time.Minute)
	require.NoError(t, err)

	now = t0.Add(time.Hour)
	_, err = verifier.Decode(tok, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCodec_TamperedPayload(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	tok, err := c.Encode(7, domain.TokenAccess, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"iss":1,"sub":"access","exp":4102444800}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	uid, err := c.Decode(tampered, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Zero(t, uid)
}

func TestCodec_Garbage(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	for _, s := range []string{"", "not-a-token", "a.b.c", "Bearer x.y.z"} {
		_, err := c.Decode(s, domain.TokenAccess)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, "input %q", s)
	}
}

func TestCodec_UnsupportedAlgorithm(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	claims := Claims{UserID: 7, Kind: domain.TokenAccess, ExpiresAt: jwt.NewNumericDate(t0.Add(time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = c.Decode(tok, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCodec_MissingExpiry(t *testing.T) {
	now := t0
	c := newTestCodec("secret", &now)
	claims := Claims{UserID: 7, Kind: domain.TokenAccess}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = c.Decode(tok, domain.TokenAccess)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
