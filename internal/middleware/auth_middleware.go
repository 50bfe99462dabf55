// internal/middleware/auth_middleware.go
package middleware

import (
	"strings"

	"movers-service/internal/pkg/jwt"
	"movers-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates admin bearer tokens.
type TokenVerifier interface {
	VerifyToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Auth validates the Authorization header and stores the admin identity
// on the request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authorization token")
			return
		}

		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		c.Set("admin_email", claims.Email)
		c.Set("admin_subject", claims.Subject)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
