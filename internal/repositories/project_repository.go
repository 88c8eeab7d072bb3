package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sonna_backend/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByUser(userID uint) ([]models.Project, error)
	// FindAllWithUsers returns every project with its owner preloaded,
	// newest first. Used by the admin applications view.
	FindAllWithUsers() ([]models.Project, error)
	UpdateStatus(projectID uint, status string) error
	CountAll() (int64, error)
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByUser(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) FindAllWithUsers() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("User").Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) UpdateStatus(projectID uint, status string) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", projectID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
