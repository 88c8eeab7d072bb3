package routes

import (
	"github.com/gin-gonic/gin"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/handlers"
	"sonna_backend/internal/middleware"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
	uploadsDir string,
) {
	api := router.Group("/api")
	{
		// Public: registration and login.
		appHandlers.Auth.RegisterRoutes(api)

		// Authenticated user endpoints.
		userGroup := api.Group("")
		userGroup.Use(middleware.AuthMiddleware(tokens))
		{
			appHandlers.User.RegisterRoutes(userGroup)
		}

		// Admin dashboard endpoints.
		adminGroup := api.Group("")
		adminGroup.Use(middleware.AuthMiddleware(tokens), middleware.AdminMiddleware())
		{
			appHandlers.Admin.RegisterRoutes(adminGroup)
		}
	}

	// Uploaded files are served directly when local storage is in use.
	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}
}
