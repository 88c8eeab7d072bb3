package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sonna_backend/internal/models"
)

var (
	ErrContentNotFound    = errors.New("content not found")
	ErrInvalidContentKind = errors.New("invalid content kind")
)

// ContentKind identifies one of the admin-managed content tables.
type ContentKind string

const (
	ContentNews     ContentKind = "news"
	ContentProducts ContentKind = "products"
	ContentCamps    ContentKind = "camps"
	ContentPodcasts ContentKind = "podcasts"
	ContentExperts  ContentKind = "experts"
)

// NormalizeContentKind maps a request path tag (singular or plural) onto
// a known content kind.
func NormalizeContentKind(tag string) (ContentKind, error) {
	switch tag {
	case "news":
		return ContentNews, nil
	case "products", "product":
		return ContentProducts, nil
	case "camps", "camp":
		return ContentCamps, nil
	case "podcasts", "podcast":
		return ContentPodcasts, nil
	case "experts", "expert":
		return ContentExperts, nil
	default:
		return "", ErrInvalidContentKind
	}
}

// ContentCounts feed the admin dashboard analytics.
type ContentCounts struct {
	News     int64 `json:"news_count"`
	Products int64 `json:"products_count"`
	Camps    int64 `json:"camps_count"`
	Podcasts int64 `json:"podcasts_count"`
	Experts  int64 `json:"experts_count"`
}

type ContentRepository interface {
	ListNews() ([]models.News, error)
	ListProducts() ([]models.Product, error)
	ListCamps() ([]models.Camp, error)
	ListPodcasts() ([]models.Podcast, error)
	ListExperts() ([]models.Expert, error)

	// Create inserts a row into the table selected by kind. For experts
	// the title is stored as the expert's name.
	Create(kind ContentKind, title, description, imageURL string) error
	Delete(kind ContentKind, id uint) error
	Counts() (*ContentCounts, error)
}

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) ListNews() ([]models.News, error) {
	var items []models.News
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) ListProducts() ([]models.Product, error) {
	var items []models.Product
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) ListCamps() ([]models.Camp, error) {
	var items []models.Camp
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) ListPodcasts() ([]models.Podcast, error) {
	var items []models.Podcast
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) ListExperts() ([]models.Expert, error) {
	var items []models.Expert
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ContentRepositoryImpl) Create(kind ContentKind, title, description, imageURL string) error {
	switch kind {
	case ContentNews:
		return r.db.Create(&models.News{Title: title, Description: description, ImageURL: imageURL}).Error
	case ContentProducts:
		return r.db.Create(&models.Product{Title: title, Description: description, ImageURL: imageURL}).Error
	case ContentCamps:
		return r.db.Create(&models.Camp{Title: title, Description: description, ImageURL: imageURL}).Error
	case ContentPodcasts:
		return r.db.Create(&models.Podcast{Title: title, Description: description, ImageURL: imageURL}).Error
	case ContentExperts:
		return r.db.Create(&models.Expert{Name: title, Description: description, ImageURL: imageURL}).Error
	default:
		return ErrInvalidContentKind
	}
}

func (r *ContentRepositoryImpl) Delete(kind ContentKind, id uint) error {
	var model interface{}
	switch kind {
	case ContentNews:
		model = &models.News{}
	case ContentProducts:
		model = &models.Product{}
	case ContentCamps:
		model = &models.Camp{}
	case ContentPodcasts:
		model = &models.Podcast{}
	case ContentExperts:
		model = &models.Expert{}
	default:
		return ErrInvalidContentKind
	}

	result := r.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func (r *ContentRepositoryImpl) Counts() (*ContentCounts, error) {
	counts := &ContentCounts{}
	for _, c := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.News{}, &counts.News},
		{&models.Product{}, &counts.Products},
		{&models.Camp{}, &counts.Camps},
		{&models.Podcast{}, &counts.Podcasts},
		{&models.Expert{}, &counts.Experts},
	} {
		if err := r.db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}
