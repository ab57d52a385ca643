package verification

import (
	"context"
	"errors"
	"time"

	"github.com/ainame-auth/internal/domain"
	"github.com/ainame-auth/internal/pkg/id"
)

// CodeTTL is how long an issued code is accepted.
const CodeTTL = 10 * time.Minute

type codeRepo interface {
	Put(ctx context.Context, c *domain.EmailCode) error
	// FindLatest returns the newest record for (email, code) or an error
	// wrapping domain.ErrNotFound.
	FindLatest(ctx context.Context, email, code string) (*domain.EmailCode, error)
}

// Store records issued codes and checks submitted ones against CodeTTL.
// Records are append-only: a code stays usable for its whole window, however
// many times it is checked and whatever codes are issued after it.
type Store struct {
	repo codeRepo
	now  func() time.Time
}

func NewStore(repo codeRepo) *Store {
	return &Store{repo: repo, now: time.Now}
}

func (s *Store) Record(ctx context.Context, email, code string) (*domain.EmailCode, error) {
	now := s.now().UTC()
	c := &domain.EmailCode{
		ID:        id.New(),
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(CodeTTL).Unix(),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// IsValid reports whether code was issued to email within the last CodeTTL.
// A missing record is a plain false; only storage failures are errors.
func (s *Store) IsValid(ctx context.Context, email, code string) (bool, error) {
	c, err := s.repo.FindLatest(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if s.now().Sub(c.CreatedAt) > CodeTTL {
		return false, nil
	}
	return true, nil
}
