package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName string `gorm:"size:100" json:"full_name,omitempty"`

	HashedPassword string `gorm:"size:255;not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	PasswordResetToken   string     `gorm:"size:64;index" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
