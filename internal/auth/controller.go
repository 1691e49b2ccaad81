package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "pizzeria/internal/errors"
)

type Controller struct {
	service    Authenticator
	policy     CookiePolicy
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewController(service Authenticator, policy CookiePolicy, sessionTTL time.Duration, logger *zap.Logger) *Controller {
	return &Controller{
		service:    service,
		policy:     policy,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Error: "request body must be valid JSON"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Error: "username and password are required"})
		return
	}

	sess, err := c.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if ae, ok := apperrors.IsAuthError(err); ok {
			c.writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Error: ae.Message})
			return
		}
		c.logger.Error("login failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: "an unexpected error occurred"})
		return
	}

	http.SetCookie(w, c.policy.SessionCookie(sess.Token, c.sessionTTL))
	c.writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := c.service.Logout(r.Context(), token); err != nil {
		c.logger.Error("logout failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Error: "an unexpected error occurred"})
		return
	}

	http.SetCookie(w, c.policy.ExpiredCookie())
	c.writeJSON(w, http.StatusOK, loginResponse{Success: true})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
