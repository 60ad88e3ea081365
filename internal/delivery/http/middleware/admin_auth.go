package middleware

import (
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaimsKey is the gin context key carrying validated admin claims.
const AdminClaimsKey = "AdminClaims"

// AdminJWT enforces a simple HMAC-signed JWT for admin endpoints. With an
// empty secret admin access is disabled entirely.
func AdminJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			response.Error(c, http.StatusUnauthorized, "Admin access is disabled", nil)
			c.Abort()
			return
		}

		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Missing authorization header", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(auth, "Bearer ")
		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Next()
	}
}
