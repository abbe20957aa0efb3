package auth

import (
	"errors"

	"vetclinic/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

// Middleware gates a route group behind the session cookie. A missing cookie
// and a bad token are distinct failures: 401 vs 403.
func Middleware(tokens *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				apierr := apierror.UnauthenticatedError
				return c.JSON(apierr.Code(), apierr)
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				apierr := apierror.InvalidAuthTokenError
				return c.JSON(apierr.Code(), apierr)
			}

			c.Set(sessionContextKey, claims)
			return next(c)
		}
	}
}

// SessionFromCtx returns the claims stored by Middleware.
func SessionFromCtx(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(sessionContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, errors.New("no session on context")
	}
	return claims, nil
}
