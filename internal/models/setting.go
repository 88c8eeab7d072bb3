package models

// SystemSetting is a key/value pair editable from the admin dashboard.
type SystemSetting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `json:"value"`
}
