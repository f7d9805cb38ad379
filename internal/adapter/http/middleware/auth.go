package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sumee_intake/internal/adapter/http/handlers"
	"sumee_intake/internal/auth"
	"sumee_intake/pkg"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid access token", http.StatusUnauthorized)

// RequireAuth validates the bearer token and stores the caller id for the
// handlers. Routes behind it can rely on a non-empty caller id.
func RequireAuth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		handlers.SetCallerID(c, claims.Subject)
		c.Next()
	}
}
