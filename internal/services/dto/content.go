package dto

import "sonna_backend/internal/repositories"

// ContentCreateRequest is the multipart form body for creating a content
// item. For experts the title becomes the expert's name.
type ContentCreateRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
}

type UpdateSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// DashboardStats aggregates entity counts for the admin dashboard.
type DashboardStats struct {
	UsersCount    int64 `json:"users_count"`
	ProjectsCount int64 `json:"projects_count"`
	repositories.ContentCounts
}
