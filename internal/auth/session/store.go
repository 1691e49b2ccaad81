package session

import (
	"context"

	"pizzeria/internal/domain"
)

// Store holds session records keyed by their opaque token. Implementations
// must be safe for concurrent use. Get returns (nil, nil) for a token with
// no live session; lookups never distinguish "never existed" from "expired".
type Store interface {
	Create(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
