package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"sonna_backend/internal/auth"
	"sonna_backend/internal/logger"
	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

type AuthService interface {
	// Register creates a user, notifies the administrator and logs the
	// new user in, returning the created record and a fresh token.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// RegisterAdmin is Register with the role forced to Admin, gated by
	// the configured setup token.
	RegisterAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	tokens     *auth.TokenManager
	notifier   NotificationService
	setupToken string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	notifier NotificationService,
	setupToken string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokens:     tokens,
		notifier:   notifier,
		setupToken: setupToken,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeIndividual
	}

	user, err := s.createUser(ctx, req, userType)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmin(ctx, "New User Registered",
		fmt.Sprintf("User %s (%s) has joined.", user.FullName, user.UserType))

	return s.autoLogin(ctx, user, req)
}

func (s *AuthServiceImpl) RegisterAdmin(ctx context.Context, req *dto.AdminRegisterRequest) (*dto.AuthResponse, error) {
	// Admin creation is only open when a setup token is configured, and
	// only to callers presenting it.
	if s.setupToken == "" {
		return nil, apperrors.ErrForbidden
	}
	if subtle.ConstantTimeCompare([]byte(req.SetupToken), []byte(s.setupToken)) != 1 {
		return nil, apperrors.ErrInvalidSetupToken
	}

	user, err := s.createUser(ctx, &req.RegisterRequest, models.UserTypeAdmin)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyAdmin(ctx, "New Admin Registered",
		fmt.Sprintf("Admin %s has joined.", user.FullName))

	return s.autoLogin(ctx, user, &req.RegisterRequest)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	token, err := s.login(ctx, req.PhoneOrCR, req.Password)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func (s *AuthServiceImpl) createUser(ctx context.Context, req *dto.RegisterRequest, userType string) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		UserType:     userType,
		CRNumber:     req.CRNumber,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// autoLogin issues a token for a user who just registered, using the
// identifier they registered with: phone number preferred, else CR
// number.
func (s *AuthServiceImpl) autoLogin(ctx context.Context, user *models.User, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	identifier := req.PhoneNumber
	if identifier == "" && req.CRNumber != nil {
		identifier = *req.CRNumber
	}
	if identifier == "" {
		return nil, apperrors.ErrMissingIdentifier
	}

	token, err := s.login(ctx, identifier, req.Password)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: user, Token: token}, nil
}

// login verifies credentials and issues a token. Unknown identifiers and
// wrong passwords both produce ErrInvalidCredentials, so the caller
// cannot tell which one occurred.
func (s *AuthServiceImpl) login(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.userRepo.FindByPhoneOrCR(identifier)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	// Transparent migration of legacy or lower-cost hashes. The login
	// succeeds even if persisting the new hash fails.
	if auth.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := auth.HashPassword(password); hashErr == nil {
			if updErr := s.userRepo.UpdatePasswordHash(user.ID, newHash); updErr != nil {
				logger.CtxWarn(ctx, "Failed to persist rehashed password", "user_id", user.ID, "error", updErr.Error())
			}
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return token, nil
}
