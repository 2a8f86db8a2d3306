package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/habitatmx/realestate-api/internal/auth"
)

// SessionCookieName is the cookie carrying the session token for browser
// clients. API clients send the same token as a bearer header instead.
const SessionCookieName = "hm_session"

// tokenExtractor pulls a candidate session token from a request. Returns
// the token and whether one was present.
type tokenExtractor func(c echo.Context) (string, bool)

// extractors are tried in order; the cookie wins over the bearer header.
var extractors = []tokenExtractor{cookieToken, bearerToken}

func cookieToken(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Session verifies the session token and injects the identity into the
// echo context. Clients only ever see a generic 401 message; the actual
// verification failure is logged server-side.
func Session(tokens *auth.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			for _, extract := range extractors {
				if t, ok := extract(c); ok {
					token = t
					break
				}
			}
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				log.Warn().Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("session token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set("username", identity.Username)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}
