package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"sedbms/internal/access"
	"sedbms/internal/auth"
	"sedbms/internal/errors"
	"sedbms/internal/service"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "session"

// tokenContextKey is where echo-jwt stores the parsed token.
const tokenContextKey = "user"

// claimsFrom returns the claims parsed by echo-jwt, or nil.
func claimsFrom(c echo.Context) *auth.Claims {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(*auth.Claims)
	return claims
}

// Session resumes the session behind a validated token and attaches it to the
// request context. Revoked tokens are rejected as unauthenticated.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			session, err := authService.Resume(ctx, claimsFrom(c))
			if err != nil {
				return respondError(err)
			}
			c.SetRequest(c.Request().WithContext(access.WithSession(ctx, session)))
			return next(c)
		}
	}
}

// Require authorizes action for the current session.
func Require(action access.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := access.Authorize(action, access.FromContext(c.Request().Context())); err != nil {
				return respondError(err)
			}
			return next(c)
		}
	}
}

// TokenError renders echo-jwt failures (missing, malformed or expired token).
func TokenError(c echo.Context, err error) error {
	return respondError(errors.ErrUnauthenticated)
}
