package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// AuthMiddleware verifies the bearer JWT and stores the resulting Principal
// in the context. Tokens signed with anything but HMAC are rejected.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization_header_missing"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(401, gin.H{"error": "authorization_header_invalid"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token"})
			return
		}

		id, ok := claims["id"].(float64)
		if !ok || id < 1 {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token"})
			return
		}
		phone, _ := claims["phoneNumber"].(string)
		roleStr, _ := claims["role"].(string)
		role, ok := parseRole(roleStr)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(principalKey, Principal{ID: uint(id), PhoneNumber: phone, Role: role})
		c.Next()
	}
}

// RequireRole guards a route group to exactly one role.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok || p.Role != role {
			c.AbortWithStatusJSON(401, gin.H{"error": "forbidden_role"})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
