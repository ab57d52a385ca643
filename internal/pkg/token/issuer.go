package token

import (
	"time"

	"github.com/ainame-auth/internal/domain"
)

type encoder interface {
	Encode(userID int64, kind domain.TokenKind, ttl time.Duration) (string, error)
}

// Issuer builds the token responses handed out at login and refresh.
// Its fields are fixed at construction, so one Issuer serves all requests.
type Issuer struct {
	enc        encoder
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(enc encoder, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{enc: enc, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueLoginPair returns a fresh access and refresh token for userID.
func (i *Issuer) IssueLoginPair(userID int64) (*domain.TokenPair, error) {
	access, err := i.enc.Encode(userID, domain.TokenAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.enc.Encode(userID, domain.TokenRefresh, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueRefreshPair returns a new access token only; the caller keeps its refresh token.
func (i *Issuer) IssueRefreshPair(userID int64) (*domain.UpdateToken, error) {
	access, err := i.enc.Encode(userID, domain.TokenAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateToken{AccessToken: access}, nil
}
