package middleware // reusable HTTP middleware for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/utils"
)

// UserIDKey is the context key under which Authenticate stores the
// verified owner id. Handlers must take the owner identity from here and
// never from a request body or query parameter.
const UserIDKey = "user_id"

// Authenticate returns an Echo middleware that gates protected routes.
// The client sends the raw signed token as the Authorization header value
// (no "Bearer " prefix). A missing header halts the request with 401 and
// "Authorization token is required."; a token that fails signature or
// expiry checks halts it with 401 and "Invalid token. Please log in
// again.". On success the decoded user id is stored in the context as a
// uint64 and the downstream handler runs.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required."})
			}
			userID, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token. Please log in again."})
			}
			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
