package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Roles allowed through EditorGuard.
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// EditorGuard protects the write routes. With an empty secret it returns no
// handlers and writes are open.
func EditorGuard(secret string) []gin.HandlerFunc {
	if secret == "" {
		return nil
	}
	return []gin.HandlerFunc{AuthMiddleware(secret), RequireRole(RoleEditor, RoleAdmin)}
}

// AuthMiddleware validates an HS256 bearer token and stores its subject and
// role on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	jwtKey := []byte(secret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(tokenString), func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			c.Set("subject", sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token"})
			return
		}
		for _, r := range roles {
			if value == r {
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

// SignEditorToken issues a token accepted by EditorGuard.
func SignEditorToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
