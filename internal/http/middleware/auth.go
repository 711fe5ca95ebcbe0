package middleware

import (
	"net/http"
	"strings"

	"cafehub/internal/auth"

	"github.com/labstack/echo/v4"
)

// SessionAuth validates the shop session token and stores the customer
// identity in the request context. Unauthenticated requests get a login
// redirect target instead of an error message, mirroring how the storefront
// handles the shop API's 401s.
func SessionAuth(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"redirect": "/login"})
			}

			claims, err := authService.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"redirect": "/login"})
			}

			c.Set("session_token", token)
			c.Set("customer_id", claims.CustomerID)
			c.Set("customer_name", claims.Name)

			return next(c)
		}
	}
}

// extractToken reads the session token from the Authorization header, falling
// back to the session cookie the web storefront sets
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie.Value
	}
	return ""
}
