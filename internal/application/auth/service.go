package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/ainame-auth/internal/application/verification"
	"github.com/ainame-auth/internal/domain"
	"github.com/ainame-auth/internal/infrastructure/sns"
	"github.com/ainame-auth/internal/pkg/code"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const codeMailSubject = "Your verification code"

type Service interface {
	RequestCode(ctx context.Context, email string) error
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
}

type codeStore interface {
	Record(ctx context.Context, email, code string) (*domain.EmailCode, error)
	IsValid(ctx context.Context, email, code string) (bool, error)
}

type userStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u *domain.User) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

type service struct {
	codes        codeStore
	users        userStore
	mailer       mailer
	events       eventPublisher
	generateCode func() string
	now          func() time.Time
}

// ServiceDeps wires the registration service. Events may be nil.
type ServiceDeps struct {
	Codes        codeStore
	UserRepo     userStore
	Mailer       mailer
	Events       eventPublisher
	GenerateCode func() string
}

func NewService(deps ServiceDeps) Service {
	gen := deps.GenerateCode
	if gen == nil {
		gen = code.Generate
	}
	return &service{
		codes:        deps.Codes,
		users:        deps.UserRepo,
		mailer:       deps.Mailer,
		events:       deps.Events,
		generateCode: gen,
		now:          time.Now,
	}
}

// RequestCode records a fresh code for email and mails it.
func (s *service) RequestCode(ctx context.Context, email string) error {
	c := s.generateCode()
	if _, err := s.codes.Record(ctx, email, c); err != nil {
		return fmt.Errorf("record code: %w", err)
	}
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		c, int(verification.CodeTTL/time.Minute))
	if err := s.mailer.SendEmail(email, codeMailSubject, body); err != nil {
		return err
	}
	zap.L().Info("verification code sent", zap.String("email", email))
	return nil
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}
	ok, err := s.codes.IsValid(ctx, req.Email, req.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.publishRegistered(ctx, u)
	return u, nil
}

func (s *service) publishRegistered(ctx context.Context, u *domain.User) {
	if s.events == nil {
		return
	}
	evt := domain.UserRegistered{UserID: u.UserID, Email: u.Email, Username: u.Username, CreatedAt: u.CreatedAt}
	if err := s.events.Publish(ctx, sns.EventUserRegistered, evt); err != nil {
		zap.L().Warn("failed to publish registration event", zap.Int64("user_id", u.UserID), zap.Error(err))
	}
}
