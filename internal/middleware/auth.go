package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/model"
	"storefront-api/internal/token"
)

const identityKey = "identity"

// RequireAuth extracts and verifies the bearer token, storing the resulting
// identity on the request context for downstream handlers.
func RequireAuth(verifier *token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Access denied. No token provided.",
				})
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"message": "Invalid token.",
				})
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin identities. Composes after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"message": "Unauthorized: User not authenticated",
				})
			}
			if id.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{
					"message": "Unauthorized access: Admin only",
				})
			}
			return next(c)
		}
	}
}

func IdentityFrom(c echo.Context) (*token.Identity, bool) {
	id, ok := c.Get(identityKey).(*token.Identity)
	return id, ok
}
