package handlers

import (
	"sonna_backend/internal/services"
	"sonna_backend/internal/validator"
)

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	Auth  *AuthHandler
	User  *UserHandler
	Admin *AdminHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:  NewAuthHandler(base, svc.AuthService),
		User:  NewUserHandler(base, svc.UserService),
		Admin: NewAdminHandler(base, svc.ContentService),
	}
}
