package models

// User role tags. The set is open: the column stores plain strings so new
// role tags do not require a migration.
const (
	UserTypeAdmin      = "Admin"
	UserTypeIndividual = "Individual"
	UserTypeFactory    = "Factory"
)

type User struct {
	BaseModel
	FullName     string  `gorm:"not null" json:"full_name"`
	PhoneNumber  string  `gorm:"uniqueIndex;not null" json:"phone_number"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	UserType     string  `gorm:"type:varchar(20);not null;default:'Individual'" json:"user_type"`
	CRNumber     *string `gorm:"uniqueIndex" json:"cr_number"` // commercial registration number

	// Relations
	Projects []Project `gorm:"foreignKey:UserID" json:"projects,omitempty"`
}

// IsAdmin reports whether the user carries the admin role tag.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}
