package auth

import (
	"net/http"
	"time"
)

const SessionCookieName = "admin_session"

// CookiePolicy fixes the cookie attributes per environment: Lax over plain
// HTTP in development, None+Secure in production where the storefront is
// served from another origin over TLS.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

func NewCookiePolicy(production bool) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteLaxMode}
}

func (p CookiePolicy) SessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}

func (p CookiePolicy) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
	}
}
