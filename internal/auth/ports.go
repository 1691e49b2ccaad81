package auth

import (
	"context"

	"pizzeria/internal/domain"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (*domain.Session, error)
}
