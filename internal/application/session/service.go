package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ainame-auth/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error)
	Refresh(ctx context.Context, userID int64) (*domain.UpdateToken, error)
	GetCurrent(ctx context.Context, userID int64) (*domain.User, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Get(ctx context.Context, userID int64) (*domain.User, error)
}

type tokenIssuer interface {
	IssueLoginPair(userID int64) (*domain.TokenPair, error)
	IssueRefreshPair(userID int64) (*domain.UpdateToken, error)
}

type service struct {
	users  userStore
	tokens tokenIssuer
}

func NewService(users userStore, tokens tokenIssuer) Service {
	return &service{users: users, tokens: tokens}
}

var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}
	return s.tokens.IssueLoginPair(u.UserID)
}

func (s *service) Refresh(_ context.Context, userID int64) (*domain.UpdateToken, error) {
	return s.tokens.IssueRefreshPair(userID)
}

func (s *service) GetCurrent(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.Get(ctx, userID)
}
