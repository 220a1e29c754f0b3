package models

import "time"

const (
	RoleAdmin    = "Admin"
	RolePJGudang = "PJ Gudang"
	RoleUser     = "User"
)

type User struct {
	ID          uint       `gorm:"primaryKey"                    json:"id"`
	Nama        string     `gorm:"size:180;not null"             json:"nama"`
	Username    string     `gorm:"uniqueIndex;size:120;not null" json:"username"`
	Password    string     `gorm:"size:255;not null"             json:"-"` // jangan dikirim ke client
	Role        string     `gorm:"size:30;default:'User'"        json:"role"`
	AvatarURL   string     `gorm:"size:255"                      json:"avatar_url"`
	IsActive    bool       `gorm:"default:true"                  json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
