package auth

import (
	"net/http"

	"go.uber.org/zap"

	"pizzeria/internal/auth/session"
	"pizzeria/internal/config"
	"pizzeria/internal/domain"
)

type Module struct {
	Controller *Controller
	Guard      func(http.Handler) http.Handler
	Service    *Service
}

func NewModule(cfg *config.Config, sessions session.Store, logger *zap.Logger) *Module {
	admin := domain.Admin{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}

	service := NewService(admin, sessions, cfg.Session.TTL, logger)
	policy := NewCookiePolicy(cfg.IsProduction())

	return &Module{
		Controller: NewController(service, policy, cfg.Session.TTL, logger),
		Guard:      RequireAdmin(service, logger),
		Service:    service,
	}
}
