package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/core/domain"
)

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		name     string
		role     interface{}
		wantCode int
	}{
		{"admin allowed", domain.RoleAdmin, http.StatusOK},
		{"staff rejected", domain.RoleStaff, http.StatusForbidden},
		{"unknown role rejected", "intern", http.StatusForbidden},
		{"missing role rejected", nil, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/staff", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			err := handler(c)
			if tc.wantCode == http.StatusOK {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}

			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != tc.wantCode {
				t.Fatalf("expected %d, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	e := echo.New()
	handler := RequireRole(domain.RoleAdmin, domain.RoleStaff)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, role := range []string{domain.RoleAdmin, domain.RoleStaff} {
		req := httptest.NewRequest(http.MethodGet, "/admin/appointments", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)

		if err := handler(c); err != nil {
			t.Fatalf("role %s: expected success, got %v", role, err)
		}
	}
}
