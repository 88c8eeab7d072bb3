package dto

import "sonna_backend/internal/models"

type RegisterRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	UserType    string  `json:"user_type"` // defaults to Individual
	CRNumber    *string `json:"cr_number"`
}

// AdminRegisterRequest additionally carries the one-time setup token
// that gates admin creation.
type AdminRegisterRequest struct {
	RegisterRequest
	SetupToken string `json:"setup_token" validate:"required"`
}

type LoginRequest struct {
	// PhoneOrCR is the login identifier: phone number or commercial
	// registration number.
	PhoneOrCR string `json:"phone_or_cr" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
