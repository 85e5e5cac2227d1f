package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer carries running aggregates mutated in lock-step with order creation
// and approved cancellation. Aggregates are never recomputed lazily from
// history; reads stay O(1).
type Customer struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                       // primary key
	Name          string         `gorm:"type:varchar(200)" json:"name,omitempty"`                    // display name
	Phone         *string        `gorm:"type:varchar(32);uniqueIndex" json:"phone,omitempty"`        // unique phone
	Email         *string        `gorm:"type:varchar(200);uniqueIndex" json:"email,omitempty"`       // unique email
	TotalOrders   int            `gorm:"not null;default:0" json:"total_orders"`                     // lifetime order count
	TotalSpent    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_spent"`   // lifetime spend
	LoyaltyPoints int            `gorm:"not null;default:0" json:"loyalty_points"`                   // current points balance
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                        // active flag
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                    // created at
	UpdatedAt     time.Time      `json:"updated_at"`                                                 // updated at
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                             // soft delete
}

// TableName sets the table name.
func (Customer) TableName() string {
	return "customers"
}
