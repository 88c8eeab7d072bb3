package models

// Project statuses.
const (
	ProjectStatusPending  = "Pending"
	ProjectStatusAccepted = "Accepted"
	ProjectStatusRejected = "Rejected"
)

// Project is a user-submitted work item reviewed by the administrator.
type Project struct {
	BaseModel
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
	Status      string `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
