package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/model"
	"storefront-api/internal/token"
)

func newGuardedServer(t *testing.T, adminOnly bool) *echo.Echo {
	t.Helper()

	e := echo.New()
	mws := []echo.MiddlewareFunc{RequireAuth(token.NewVerifier("test-secret"))}
	if adminOnly {
		mws = append(mws, RequireAdmin())
	}
	e.GET("/guarded", func(c echo.Context) error {
		id, _ := IdentityFrom(c)
		return c.JSON(http.StatusOK, echo.Map{"userId": id.UserID})
	}, mws...)
	return e
}

func doGet(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthMissingHeader(t *testing.T) {
	e := newGuardedServer(t, false)

	rec := doGet(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	e := newGuardedServer(t, false)

	rec := doGet(e, "Bearer bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	e := newGuardedServer(t, false)
	raw, err := token.NewIssuer("test-secret", -time.Minute).Issue("user-1", model.RoleCustomer)
	require.NoError(t, err)

	rec := doGet(e, "Bearer "+raw)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	e := newGuardedServer(t, true)
	raw, err := token.NewIssuer("test-secret", time.Hour).Issue("user-1", model.RoleCustomer)
	require.NoError(t, err)

	rec := doGet(e, "Bearer "+raw)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin only")
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	e := newGuardedServer(t, true)
	raw, err := token.NewIssuer("test-secret", time.Hour).Issue("admin-1", model.RoleAdmin)
	require.NoError(t, err)

	rec := doGet(e, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin-1")
}
