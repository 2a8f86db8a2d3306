package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/api/metrics"
	"github.com/habitatmx/realestate-api/internal/api/middleware"
	"github.com/habitatmx/realestate-api/internal/core/domain"
	"github.com/habitatmx/realestate-api/internal/core/ports"
)

// AuthHandler handles login, logout, dashboard and password changes.
type AuthHandler struct {
	authService ports.AuthService
	production  bool
}

func NewAuthHandler(authService ports.AuthService, production bool) *AuthHandler {
	return &AuthHandler{authService: authService, production: production}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// Login authenticates an admin or staff account and starts a session.
//
// @Summary      Log in to the back office
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(result.Token, result.ExpiresAt))
	return c.JSON(http.StatusOK, loginResponse{Message: "login successful", Token: result.Token})
}

// Logout clears the session cookie. Tokens are stateless, so this is
// advisory: a copy held elsewhere stays valid until it expires.
//
// @Summary      Log out of the back office
// @Tags         admin
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Dashboard confirms the session is valid and echoes the identity.
//
// @Summary      Back-office session check
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AuthHandler) Dashboard(c echo.Context) error {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, dashboardResponse{
		Message:  "welcome back",
		Identity: domain.Identity{Username: username, Role: role},
	})
}

// ChangePassword updates the password of the authenticated account.
//
// @Summary      Change the session account's password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := c.Get("username").(string)
	if err := h.authService.ChangePassword(c.Request().Context(), username, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// sessionCookie builds the session cookie. SameSite is relaxed to None in
// production because the deployed front end is served from another origin;
// None requires Secure, which production always has.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
	}
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}
	return cookie
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	cookie := h.sessionCookie("", time.Now())
	cookie.MaxAge = -1
	return cookie
}
