package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Registration errors. Unknown and expired codes are deliberately the same error.
var (
	ErrInvalidCode    = errors.New("invalid verification code")
	ErrDuplicateEmail = fmt.Errorf("email already registered: %w", ErrConflict)
)

// Token decode failures. Exactly one of these is returned for a rejected token.
var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenTypeMismatch = errors.New("token type mismatch")
	ErrTokenInvalid      = errors.New("token invalid")
)
