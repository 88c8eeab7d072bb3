package models

// Content tables managed from the admin dashboard. They share the same
// shape; Expert names its title column Name.

type News struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Product struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Camp struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Podcast struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Expert struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
