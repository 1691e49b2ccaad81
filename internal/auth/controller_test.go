package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pizzeria/internal/domain"
	apperrors "pizzeria/internal/errors"
)

func newTestController(service Authenticator) *Controller {
	return NewController(service, NewCookiePolicy(false), time.Hour, zap.NewNop())
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestHandleLogin_Success(t *testing.T) {
	service := &mockAuthenticator{
		LoginFunc: func(ctx context.Context, username, password string) (*domain.Session, error) {
			assert.Equal(t, "admin", username)
			assert.Equal(t, "secret", password)
			return &domain.Session{Token: "issued-token", Admin: true}, nil
		},
	}
	ctrl := newTestController(service)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	rec := httptest.NewRecorder()
	ctrl.HandleLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookie := sessionCookie(rec.Result())
	require.NotNil(t, cookie)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	service := &mockAuthenticator{
		LoginFunc: func(ctx context.Context, username, password string) (*domain.Session, error) {
			return nil, apperrors.NewAuthError(failedLoginMessage)
		},
	}
	ctrl := newTestController(service)

	// Two attempts in a row behave identically: same status, same body, no
	// cookie, no lockout.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
		rec := httptest.NewRecorder()
		ctrl.HandleLogin(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"invalid username or password"}`, rec.Body.String())
		assert.Nil(t, sessionCookie(rec.Result()))
	}
}

func TestHandleLogin_StoreFailure(t *testing.T) {
	service := &mockAuthenticator{
		LoginFunc: func(ctx context.Context, username, password string) (*domain.Session, error) {
			return nil, apperrors.NewStoreError("creating session", nil)
		},
	}
	ctrl := newTestController(service)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"secret"}`))
	rec := httptest.NewRecorder()
	ctrl.HandleLogin(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, sessionCookie(rec.Result()))
}

func TestHandleLogin_MalformedBody(t *testing.T) {
	ctrl := newTestController(&mockAuthenticator{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	ctrl.HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogin_MissingFields(t *testing.T) {
	ctrl := newTestController(&mockAuthenticator{})

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin"}`))
	rec := httptest.NewRecorder()
	ctrl.HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	var deleted string
	service := &mockAuthenticator{
		LogoutFunc: func(ctx context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	ctrl := newTestController(service)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "live-token"})
	rec := httptest.NewRecorder()
	ctrl.HandleLogout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "live-token", deleted)

	cookie := sessionCookie(rec.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestHandleLogout_WithoutSession(t *testing.T) {
	service := &mockAuthenticator{
		LogoutFunc: func(ctx context.Context, token string) error {
			assert.Empty(t, token)
			return nil
		},
	}
	ctrl := newTestController(service)

	rec := httptest.NewRecorder()
	ctrl.HandleLogout(rec, httptest.NewRequest(http.MethodPost, "/admin/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestNewCookiePolicy_Production(t *testing.T) {
	policy := NewCookiePolicy(true)
	assert.True(t, policy.Secure)
	assert.Equal(t, http.SameSiteNoneMode, policy.SameSite)

	cookie := policy.SessionCookie("tok", time.Hour)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
}
