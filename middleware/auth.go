package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Raj-Aarav/FinWise/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserKey is where verified claims live in the gin context.
const ContextUserKey = "user"

// AuthRequired verifies HS256 bearer tokens issued by the auth provider and
// stores the claims in the request context. Issuer is checked only when one
// is configured.
func AuthRequired(secret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := VerifyToken(tokenString, secret, issuer)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// VerifyToken parses and validates a bearer token. The SSE handler uses it
// directly because EventSource cannot set an Authorization header.
func VerifyToken(tokenString, secret, issuer string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if issuer != "" && claims.Issuer != issuer {
		return nil, fmt.Errorf("invalid token issuer")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
