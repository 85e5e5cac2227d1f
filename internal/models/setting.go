package models

import "time"

// Setting is key/value configuration (validated structured JSON per key).
type Setting struct {
	Key       string    `gorm:"primarykey" json:"key"`  // setting key
	ValueJSON JSON      `gorm:"type:json" json:"value"` // setting value
	UpdatedAt time.Time `json:"updated_at"`             // last write
}

// TableName sets the table name.
func (Setting) TableName() string {
	return "settings"
}
