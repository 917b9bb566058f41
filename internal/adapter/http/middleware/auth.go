package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SubjectKey = "subject_id"
	RoleKey    = "subject_role"

	RoleContractor = "contractor"
	RoleCustomer   = "customer"
	RoleStaff      = "staff"
)

// Auth validates an HS256 Bearer token and stores the subject id and role
// claim in the gin context. The identity provider issues the tokens; this
// middleware only verifies them.
func Auth(secret string) gin.HandlerFunc {
	if secret == "" {
		secret = os.Getenv("ACCESS_TOKEN_SECRET")
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing subject in token"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(SubjectKey, sub)
		c.Set(RoleKey, role)
		c.Next()
	}
}

// RequireRole guards a route group to subjects carrying one of the given
// roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

// Subject returns the authenticated subject id from the context.
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

// IsStaff reports whether the authenticated subject carries the staff role.
func IsStaff(c *gin.Context) bool {
	return c.GetString(RoleKey) == RoleStaff
}
