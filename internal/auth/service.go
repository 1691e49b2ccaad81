package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pizzeria/internal/auth/session"
	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

const failedLoginMessage = "invalid username or password"

type Service struct {
	admin      domain.Admin
	sessions   session.Store
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewService(admin domain.Admin, sessions session.Store, sessionTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		admin:      admin,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies the credential pair against the configured administrator
// identity and establishes a session. Both failure paths return the same
// AuthError so callers cannot probe for the username. Store failures are
// surfaced as StoreError, never as a credential mismatch.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))

	if !usernameOK || passwordErr != nil {
		return nil, apperrors.NewAuthError(failedLoginMessage)
	}

	now := time.Now()
	sess := domain.Session{
		Token:     uuid.New().String(),
		Admin:     true,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, apperrors.NewStoreError("creating session", err)
	}

	s.logger.Info("admin login", zap.Time("expiresAt", sess.ExpiresAt))
	return &sess, nil
}

// Logout destroys the session server-side. It is idempotent: a token with
// no session behind it still logs out cleanly.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return apperrors.NewStoreError("deleting session", err)
	}
	return nil
}

// Authorize resolves a cookie token to a live admin session. Every failure
// collapses into the same AuthError.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperrors.NewAuthError("unauthorized")
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, apperrors.NewStoreError("looking up session", err)
	}
	if sess == nil || sess.Expired(time.Now()) || !sess.Admin {
		return nil, apperrors.NewAuthError("unauthorized")
	}

	return sess, nil
}
