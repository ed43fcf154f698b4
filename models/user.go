package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey"          json:"id"`
	Username     string     `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string     `gorm:"size:255"            json:"-"` // jangan dikirim ke client
	RoleID       uint       `json:"role_id"`
	Role         Role       `json:"role"` // preload
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	LoginCount   int        `gorm:"default:0" json:"login_count"`
}
