package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"board-backend/internal/shared/response"
	"board-backend/pkg/jwt"
)

// ActorKey is the context key holding the acting identity for audit
// stamping. Handlers read it and thread it into every mutating call.
const ActorKey = "actor"

// Auth validates the bearer token and resolves the acting identity.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ActorKey, claims.LoginID)
		c.Next()
	}
}
