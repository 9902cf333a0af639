package middleware

import (
	"net/http"
	"strings"

	"estatehub/internal/auth"
	"estatehub/internal/model"

	"github.com/gin-gonic/gin"
)

// Context keys for the verified principal.
const (
	PrincipalUIDKey   = "principalUID"
	PrincipalEmailKey = "principalEmail"
)

// RequireAuth gates a route behind a verified bearer credential. A missing
// credential is Unauthorized; a credential the identity provider rejects is
// Forbidden.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access", ""))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access", ""))
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("Forbidden access", ""))
			return
		}

		c.Set(PrincipalUIDKey, principal.UID)
		c.Set(PrincipalEmailKey, principal.Email)
		c.Next()
	}
}
