package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/logger"
	"sonna_backend/internal/models"
)

const (
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleware validates the Bearer token and stores the caller's
// identity on the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Set(userIDKey, userID)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware allows only callers with the Admin role tag. Must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.UserTypeAdmin)
}

// RequireRoles allows only callers whose role is in the given set.
func RequireRoles(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(roleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		role, ok := roleVal.(string)
		if !ok || !roleSet[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the context.
// Returns 0 when the request is not authenticated.
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}

	id, ok := userID.(uint)
	if !ok {
		return 0
	}
	return id
}

// GetRole extracts the authenticated caller's role tag.
func GetRole(c *gin.Context) string {
	roleVal, exists := c.Get(roleKey)
	if !exists {
		return ""
	}
	role, _ := roleVal.(string)
	return role
}

// UserIDString formats the caller's ID the way token subjects are stored.
func UserIDString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
