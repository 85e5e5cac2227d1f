package models

import "time"

// ActivityLog is a best-effort event trail written by the queue worker.
// Rows here are advisory; the authoritative order audit is order_status_history.
type ActivityLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`                        // primary key
	EventType string    `gorm:"type:varchar(50);index;not null" json:"event_type"` // event type
	OrderID   uint      `gorm:"index" json:"order_id,omitempty"`             // related order
	ActorID   uint      `gorm:"index" json:"actor_id,omitempty"`             // related staff user
	Detail    JSON      `gorm:"type:json" json:"detail,omitempty"`           // event detail
	CreatedAt time.Time `gorm:"index" json:"created_at"`                     // event timestamp
}

// TableName sets the table name.
func (ActivityLog) TableName() string {
	return "activity_logs"
}
