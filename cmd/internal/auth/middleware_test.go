package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedEcho(tokens *TokenIssuer) *echo.Echo {
	e := echo.New()
	g := e.Group("/protected", Middleware(tokens))
	g.GET("", func(c echo.Context) error {
		claims, err := SessionFromCtx(c)
		if err != nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, echo.Map{"user_id": claims.UserID})
	})
	return e
}

func TestMiddlewareMissingCookie(t *testing.T) {
	e := newGatedEcho(NewTokenIssuer("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestMiddlewareTamperedCookie(t *testing.T) {
	tokens := NewTokenIssuer("test-secret")
	e := newGatedEcho(tokens)

	token, err := tokens.Issue(42, "ana@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token + "x"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestMiddlewarePassesClaimsToHandler(t *testing.T) {
	tokens := NewTokenIssuer("test-secret")
	e := newGatedEcho(tokens)

	token, err := tokens.Issue(42, "ana@x.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
}

func TestSessionCookieAttributes(t *testing.T) {
	cookie := NewSessionCookie("tok", true)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(SessionTTL.Seconds()), cookie.MaxAge)

	cleared := ClearSessionCookie(true)
	assert.Equal(t, CookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
