package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "pizzeria/internal/errors"
)

// RequireAdmin gates privileged routes. It runs before any handler
// validation and rejects with one uniform 401 body: responses never say
// whether the cookie was missing, the session unknown, expired, or
// non-admin.
func RequireAdmin(service Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			if _, err := service.Authorize(r.Context(), token); err != nil {
				status := http.StatusUnauthorized
				if _, ok := apperrors.IsAuthError(err); !ok {
					logger.Error("session lookup failed", zap.Error(err))
					status = http.StatusInternalServerError
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   http.StatusText(status),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
