package jwtinfra

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ainame-auth/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed token payload: the user id travels as "iss" and the
// token kind as "sub".
type Claims struct {
	UserID    int64            `json:"iss"`
	Kind      domain.TokenKind `json:"sub"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return strconv.FormatInt(c.UserID, 10), nil }
func (c Claims) GetSubject() (string, error)                  { return string(c.Kind), nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// Codec signs and verifies HS256 tokens with a single shared secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Encode signs a token for userID of the given kind, valid for ttl.
func (c *Codec) Encode(userID int64, kind domain.TokenKind, ttl time.Duration) (string, error) {
	now := c.now()
	claims := Claims{
		UserID:    userID,
		Kind:      kind,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Decode verifies tokenStr and returns the user id it was issued to.
// The error is one of domain.ErrTokenExpired, domain.ErrTokenTypeMismatch or
// domain.ErrTokenInvalid.
func (c *Codec) Decode(tokenStr string, expected domain.TokenKind) (int64, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if claims.Kind != expected {
		return 0, domain.ErrTokenTypeMismatch
	}
	return claims.UserID, nil
}
