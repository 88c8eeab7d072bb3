package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/models"
)

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", "sonna_backend", "sonna_frontend", time.Hour)
	require.NoError(t, err)
	return tokens
}

func issueFor(t *testing.T, tokens *auth.TokenManager, id uint, userType string) string {
	t.Helper()
	user := &models.User{UserType: userType}
	user.ID = id
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return token
}

func protectedRouter(tokens *auth.TokenManager, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware(tokens)}
	if adminOnly {
		handlers = append(handlers, AdminMiddleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})

	router.GET("/protected", handlers...)
	return router
}

func doGet(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := protectedRouter(newTokens(t), false)
	w := doGet(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	router := protectedRouter(newTokens(t), false)
	w := doGet(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := newTokens(t)
	router := protectedRouter(tokens, false)

	w := doGet(router, issueFor(t, tokens, 42, models.UserTypeIndividual))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), models.UserTypeIndividual)
}

func TestAdminMiddleware(t *testing.T) {
	tokens := newTokens(t)
	router := protectedRouter(tokens, true)

	t.Run("non-admin rejected", func(t *testing.T) {
		w := doGet(router, issueFor(t, tokens, 1, models.UserTypeIndividual))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		w := doGet(router, issueFor(t, tokens, 2, models.UserTypeAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
