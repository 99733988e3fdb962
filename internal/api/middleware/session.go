package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

const sessionContextKey = "session"

// Session extracts the Basic Authorization header into a typed session and
// stores it on the request context. The route group decides the role the
// credential is asserting; the upstream API still verifies the credential
// itself on every forwarded call.
func Session(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Basic ") {
				return domain.ErrUnauthorized
			}
			SetSession(c, &domain.Session{Role: role, Credential: auth})
			return next(c)
		}
	}
}

// SetSession stores the session on the request context.
func SetSession(c echo.Context, sess *domain.Session) {
	c.Set(sessionContextKey, sess)
}

// CurrentSession returns the session placed by the Session middleware, or
// nil on unauthenticated routes.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}

// ClearSession removes the session from the request context.
func ClearSession(c echo.Context) {
	c.Set(sessionContextKey, nil)
}
