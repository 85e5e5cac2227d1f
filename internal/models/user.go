package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account (manager or admin).
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                       // primary key
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`       // login name
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`        // bcrypt hash
	DisplayName  string         `gorm:"type:varchar(200)" json:"display_name"`      // display name
	Role         string         `gorm:"type:varchar(20);not null;index" json:"role"` // admin / manager
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`        // active flag
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`                    // last successful login
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                    // created at
	UpdatedAt    time.Time      `json:"updated_at"`                                 // updated at
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                             // soft delete
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
