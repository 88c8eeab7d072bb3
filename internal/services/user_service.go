package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*models.User, error)
	// UploadProject stores the optional file, creates a Pending project
	// and notifies the administrator.
	UploadProject(ctx context.Context, userID uint, req *dto.UploadProjectRequest, file *multipart.FileHeader) (*models.Project, error)
	MyProjects(ctx context.Context, userID uint) ([]models.Project, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	files       FileService
	notifier    NotificationService
}

func NewUserService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	files FileService,
	notifier NotificationService,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		files:       files,
		notifier:    notifier,
	}
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(userID, req.FullName, req.PhoneNumber)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrUserNotFound
		case apperrors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.ErrUserExists
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return user, nil
}

func (s *UserServiceImpl) UploadProject(ctx context.Context, userID uint, req *dto.UploadProjectRequest, file *multipart.FileHeader) (*models.Project, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	fileURL := ""
	if file != nil {
		fileURL, err = s.files.Store(ctx, file)
		if err != nil {
			return nil, err
		}
	}

	project := &models.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     fileURL,
		Status:      models.ProjectStatusPending,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.NotifyAdmin(ctx, "New Project Uploaded",
		fmt.Sprintf("User %s (%s) uploaded a new project: %s.", user.FullName, user.UserType, project.Title))

	return project, nil
}

func (s *UserServiceImpl) MyProjects(ctx context.Context, userID uint) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}
