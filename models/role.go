package models

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

type Role struct {
	ID          uint    `gorm:"primaryKey"          json:"id"`
	Name        string  `gorm:"uniqueIndex;size:50" json:"name"`
	Description *string `gorm:"type:text"           json:"description,omitempty"`
}
