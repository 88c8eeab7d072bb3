package services

import (
	"context"
	"mime/multipart"

	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

// ContentService backs the admin dashboard: content CRUD, analytics,
// applications and system settings.
type ContentService interface {
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)

	ListNews(ctx context.Context) ([]models.News, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCamps(ctx context.Context) ([]models.Camp, error)
	ListPodcasts(ctx context.Context) ([]models.Podcast, error)
	ListExperts(ctx context.Context) ([]models.Expert, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Applications are the projects uploaded by users, with owners.
	Applications(ctx context.Context) ([]models.Project, error)

	Settings(ctx context.Context) ([]models.SystemSetting, error)
	UpdateSetting(ctx context.Context, req *dto.UpdateSettingRequest) (*models.SystemSetting, error)

	AddContent(ctx context.Context, typeTag string, req *dto.ContentCreateRequest, image *multipart.FileHeader) error
	DeleteContent(ctx context.Context, typeTag string, id uint) error
}

type ContentServiceImpl struct {
	contentRepo repositories.ContentRepository
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	settingRepo repositories.SettingRepository
	files       FileService
}

func NewContentService(
	contentRepo repositories.ContentRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	settingRepo repositories.SettingRepository,
	files FileService,
) ContentService {
	return &ContentServiceImpl{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		settingRepo: settingRepo,
		files:       files,
	}
}

func (s *ContentServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	usersCount, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	projectsCount, err := s.projectRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	contentCounts, err := s.contentRepo.Counts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		UsersCount:    usersCount,
		ProjectsCount: projectsCount,
		ContentCounts: *contentCounts,
	}, nil
}

func (s *ContentServiceImpl) ListNews(ctx context.Context) ([]models.News, error) {
	items, err := s.contentRepo.ListNews()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) ListProducts(ctx context.Context) ([]models.Product, error) {
	items, err := s.contentRepo.ListProducts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) ListCamps(ctx context.Context) ([]models.Camp, error) {
	items, err := s.contentRepo.ListCamps()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	items, err := s.contentRepo.ListPodcasts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) ListExperts(ctx context.Context) ([]models.Expert, error) {
	items, err := s.contentRepo.ListExperts()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *ContentServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *ContentServiceImpl) Applications(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAllWithUsers()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ContentServiceImpl) Settings(ctx context.Context) ([]models.SystemSetting, error) {
	settings, err := s.settingRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

func (s *ContentServiceImpl) UpdateSetting(ctx context.Context, req *dto.UpdateSettingRequest) (*models.SystemSetting, error) {
	setting, err := s.settingRepo.Upsert(req.Key, req.Value)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return setting, nil
}

func (s *ContentServiceImpl) AddContent(ctx context.Context, typeTag string, req *dto.ContentCreateRequest, image *multipart.FileHeader) error {
	kind, err := repositories.NormalizeContentKind(typeTag)
	if err != nil {
		return apperrors.ErrInvalidContentType
	}

	imageURL := ""
	if image != nil {
		imageURL, err = s.files.Store(ctx, image)
		if err != nil {
			return err
		}
	}

	if err := s.contentRepo.Create(kind, req.Title, req.Description, imageURL); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ContentServiceImpl) DeleteContent(ctx context.Context, typeTag string, id uint) error {
	kind, err := repositories.NormalizeContentKind(typeTag)
	if err != nil {
		return apperrors.ErrInvalidContentType
	}

	if err := s.contentRepo.Delete(kind, id); err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return apperrors.ErrContentNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
