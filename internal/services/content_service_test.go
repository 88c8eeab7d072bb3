package services

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonna_backend/internal/models"
	"sonna_backend/internal/repositories"
	"sonna_backend/internal/services/dto"
	"sonna_backend/pkg/apperrors"
)

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects []models.Project
	nextID   uint
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{nextID: 1}
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	project.ID = r.nextID
	r.nextID++
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) FindByUser(userID uint) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindAllWithUsers() ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Project(nil), r.projects...), nil
}

func (r *fakeProjectRepo) UpdateStatus(projectID uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == projectID {
			r.projects[i].Status = status
			return nil
		}
	}
	return repositories.ErrProjectNotFound
}

func (r *fakeProjectRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.projects)), nil
}

type fakeContentRepo struct {
	mu      sync.Mutex
	created map[repositories.ContentKind][]string // kind -> titles
	deleted map[repositories.ContentKind][]uint
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		created: make(map[repositories.ContentKind][]string),
		deleted: make(map[repositories.ContentKind][]uint),
	}
}

func (r *fakeContentRepo) ListNews() ([]models.News, error)        { return nil, nil }
func (r *fakeContentRepo) ListProducts() ([]models.Product, error) { return nil, nil }
func (r *fakeContentRepo) ListCamps() ([]models.Camp, error)       { return nil, nil }
func (r *fakeContentRepo) ListPodcasts() ([]models.Podcast, error) { return nil, nil }
func (r *fakeContentRepo) ListExperts() ([]models.Expert, error)   { return nil, nil }

func (r *fakeContentRepo) Create(kind repositories.ContentKind, title, description, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[kind] = append(r.created[kind], title)
	return nil
}

func (r *fakeContentRepo) Delete(kind repositories.ContentKind, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.created[kind]) == 0 {
		return repositories.ErrContentNotFound
	}
	r.deleted[kind] = append(r.deleted[kind], id)
	return nil
}

func (r *fakeContentRepo) Counts() (*repositories.ContentCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &repositories.ContentCounts{
		News:     int64(len(r.created[repositories.ContentNews])),
		Products: int64(len(r.created[repositories.ContentProducts])),
		Camps:    int64(len(r.created[repositories.ContentCamps])),
		Podcasts: int64(len(r.created[repositories.ContentPodcasts])),
		Experts:  int64(len(r.created[repositories.ContentExperts])),
	}, nil
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]string)}
}

func (r *fakeSettingRepo) FindAll() ([]models.SystemSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SystemSetting, 0, len(r.settings))
	for k, v := range r.settings {
		out = append(out, models.SystemSetting{Key: k, Value: v})
	}
	return out, nil
}

func (r *fakeSettingRepo) Upsert(key, value string) (*models.SystemSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[key] = value
	return &models.SystemSetting{Key: key, Value: value}, nil
}

type fakeFileService struct {
	stored int
	url    string
}

func (f *fakeFileService) Store(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	f.stored++
	return f.url, nil
}

func newTestContentService() (ContentService, *fakeUserRepo, *fakeProjectRepo, *fakeContentRepo, *fakeSettingRepo) {
	userRepo := newFakeUserRepo()
	projectRepo := newFakeProjectRepo()
	contentRepo := newFakeContentRepo()
	settingRepo := newFakeSettingRepo()
	svc := NewContentService(contentRepo, userRepo, projectRepo, settingRepo, &fakeFileService{url: "/uploads/x"})
	return svc, userRepo, projectRepo, contentRepo, settingRepo
}

func TestDashboard_Aggregates(t *testing.T) {
	svc, userRepo, projectRepo, contentRepo, _ := newTestContentService()
	ctx := context.Background()

	require.NoError(t, userRepo.Create(&models.User{Email: "a@x", PhoneNumber: "1"}))
	require.NoError(t, userRepo.Create(&models.User{Email: "b@x", PhoneNumber: "2"}))
	require.NoError(t, projectRepo.Create(&models.Project{UserID: 1, Title: "p"}))
	require.NoError(t, contentRepo.Create(repositories.ContentNews, "n1", "", ""))
	require.NoError(t, contentRepo.Create(repositories.ContentNews, "n2", "", ""))
	require.NoError(t, contentRepo.Create(repositories.ContentExperts, "e1", "", ""))

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.UsersCount)
	assert.Equal(t, int64(1), stats.ProjectsCount)
	assert.Equal(t, int64(2), stats.News)
	assert.Equal(t, int64(1), stats.Experts)
	assert.Equal(t, int64(0), stats.Camps)
}

func TestAddContent(t *testing.T) {
	svc, _, _, contentRepo, _ := newTestContentService()
	ctx := context.Background()

	req := &dto.ContentCreateRequest{Title: "Launch", Description: "desc"}

	t.Run("singular tag maps to kind", func(t *testing.T) {
		require.NoError(t, svc.AddContent(ctx, "product", req, nil))
		assert.Equal(t, []string{"Launch"}, contentRepo.created[repositories.ContentProducts])
	})

	t.Run("unknown tag rejected", func(t *testing.T) {
		err := svc.AddContent(ctx, "widgets", req, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidContentType)
	})
}

func TestDeleteContent(t *testing.T) {
	svc, _, _, _, _ := newTestContentService()
	ctx := context.Background()

	t.Run("unknown tag rejected", func(t *testing.T) {
		err := svc.DeleteContent(ctx, "widgets", 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidContentType)
	})

	t.Run("missing row reported", func(t *testing.T) {
		err := svc.DeleteContent(ctx, "news", 99)
		assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
	})
}

func TestUpdateSetting(t *testing.T) {
	svc, _, _, _, settingRepo := newTestContentService()
	ctx := context.Background()

	setting, err := svc.UpdateSetting(ctx, &dto.UpdateSettingRequest{Key: "site_title", Value: "Sonna"})
	require.NoError(t, err)
	assert.Equal(t, "Sonna", setting.Value)

	setting, err = svc.UpdateSetting(ctx, &dto.UpdateSettingRequest{Key: "site_title", Value: "Sonna v2"})
	require.NoError(t, err)
	assert.Equal(t, "Sonna v2", setting.Value)
	assert.Equal(t, "Sonna v2", settingRepo.settings["site_title"])
}
