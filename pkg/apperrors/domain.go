package apperrors

import "net/http"

// Predefined errors shared across services.
var (
	// Authentication. ErrInvalidCredentials deliberately does not say whether
	// the identifier or the password was wrong.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "auth", "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrInvalidSetupToken  = New(CodeForbidden, "auth", "Invalid setup token", http.StatusForbidden)

	// Users
	ErrUserNotFound     = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
	ErrUserExists       = New(CodeAlreadyExists, "user", "A user with this email, phone or CR number already exists", http.StatusConflict)
	ErrWeakPassword     = New(CodeValidationFailed, "user", "Password must be at least 6 characters", http.StatusBadRequest)
	ErrMissingIdentifier = New(CodeValidationFailed, "user", "Phone number or CR number is required", http.StatusBadRequest)

	// Content
	ErrInvalidContentType = New(CodeInvalidOperation, "content", "Invalid content type", http.StatusBadRequest)
	ErrContentNotFound    = New(CodeNotFound, "content", "Content not found", http.StatusNotFound)

	// Projects
	ErrProjectNotFound = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)

	// Uploads
	ErrFileTooLarge    = New(CodeLimitExceeded, "upload", "File size exceeds the allowed limit", http.StatusRequestEntityTooLarge)
	ErrInvalidFileType = New(CodeValidationFailed, "upload", "The provided file type is not allowed", http.StatusUnsupportedMediaType)
	ErrEmptyFile       = New(CodeValidationFailed, "upload", "File is empty", http.StatusBadRequest)
)

// ErrNotFound converts a repository not-found error into an AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into an AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}
