package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/api/middleware"
	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

type stubAuthService struct {
	loginResult    *ports.LoginResult
	loginErr       error
	changePassErr  error
	changedTo      string
	createdStaff   *domain.Account
	createStaffErr error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) ChangePassword(_ context.Context, _, _, newPassword string) error {
	if s.changePassErr != nil {
		return s.changePassErr
	}
	s.changedTo = newPassword
	return nil
}

func (s *stubAuthService) CreateStaff(_ context.Context, username, _, role string) (*domain.Account, error) {
	if s.createStaffErr != nil {
		return nil, s.createStaffErr
	}
	if s.createdStaff != nil {
		return s.createdStaff, nil
	}
	return &domain.Account{ID: "acc-1", Username: username, Role: role}, nil
}

func (s *stubAuthService) ListStaff(_ context.Context) ([]domain.Account, error) {
	return nil, nil
}

func (s *stubAuthService) DeleteStaff(_ context.Context, _ string) error {
	return nil
}

func newTestContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandler_Login_SetsCookieAndToken(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(2 * time.Hour),
		Identity:  domain.Identity{Username: "alice", Role: domain.RoleAdmin},
	}}
	h := NewAuthHandler(svc, false)

	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newTestContext(e, http.MethodPost, "/admin/login", `{"username":"alice","password":"s3cretpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Fatalf("token missing from payload: %q", resp.Token)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "signed.jwt.token" {
		t.Fatalf("cookie carries wrong token: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.MaxAge <= 0 {
		t.Fatalf("session cookie must carry a positive lifetime, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_ProductionCookieFlags(t *testing.T) {
	svc := &stubAuthService{loginResult: &ports.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(2 * time.Hour),
	}}
	h := NewAuthHandler(svc, true)

	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newTestContext(e, http.MethodPost, "/admin/login", `{"username":"alice","password":"s3cretpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	cookie := sessionCookieFrom(t, rec)
	if !cookie.Secure {
		t.Fatalf("production cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookie must be SameSite=None, got %v", cookie.SameSite)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, false)

	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newTestContext(e, http.MethodPost, "/admin/login", `{"username":"ghost","password":"whatever"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	e.Validator = NewValidator()
	c, _ := newTestContext(e, http.MethodPost, "/admin/login", `{"username":"alice"}`)

	err := h.Login(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	c, rec := newTestContext(e, http.MethodPost, "/admin/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "" {
		t.Fatalf("logout cookie must carry no token, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("logout cookie must expire immediately, MaxAge=%d", cookie.MaxAge)
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, false)

	e := echo.New()
	e.Validator = NewValidator()
	c, rec := newTestContext(e, http.MethodPut, "/admin/password", `{"current_password":"oldpassword","new_password":"newpassword"}`)
	c.Set("username", "alice")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.changedTo != "newpassword" {
		t.Fatalf("new password not forwarded, got %q", svc.changedTo)
	}
}

func TestAuthHandler_ChangePassword_TooShort(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false)

	e := echo.New()
	e.Validator = NewValidator()
	c, _ := newTestContext(e, http.MethodPut, "/admin/password", `{"current_password":"oldpassword","new_password":"short"}`)
	c.Set("username", "alice")

	err := h.ChangePassword(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %v", err)
	}
}
