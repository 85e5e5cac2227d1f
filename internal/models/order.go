package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a confirmed sale. Monetary fields are frozen at creation time and
// never recomputed from current catalog prices. After creation the row is
// mutated only by the cancellation workflow.
type Order struct {
	ID                  uint           `gorm:"primarykey" json:"id"`                                      // primary key
	OrderNo             string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // order number
	CustomerID          *uint          `gorm:"index" json:"customer_id,omitempty"`                        // customer reference (nil for anonymous walk-ins)
	CustomerName        string         `gorm:"type:varchar(200)" json:"customer_name,omitempty"`          // denormalized walk-in name
	CustomerPhone       string         `gorm:"type:varchar(32);index" json:"customer_phone,omitempty"`    // denormalized walk-in phone
	Status              string         `gorm:"index;not null" json:"status"`                              // lifecycle status
	Subtotal            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`     // sum of line totals
	Tax                 Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`          // always zero
	Total               Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`        // equals subtotal
	PaymentMethod       string         `gorm:"type:varchar(20);not null" json:"payment_method"`           // recorded, not processed
	PaymentStatus       string         `gorm:"type:varchar(20);not null" json:"payment_status"`           // recorded, not processed
	LoyaltyPointsEarned int            `gorm:"not null;default:0" json:"loyalty_points_earned"`           // points credited at creation; reversed exactly on approved cancellation
	CancelRequestedBy   *uint          `json:"cancel_requested_by,omitempty"`                             // requesting staff user
	CancelRequestedAt   *time.Time     `json:"cancel_requested_at,omitempty"`                             // request timestamp
	CancelReason        string         `gorm:"type:varchar(500)" json:"cancel_reason,omitempty"`          // request reason
	CancelledBy         *uint          `json:"cancelled_by,omitempty"`                                    // approving staff user
	CancelledAt         *time.Time     `gorm:"index" json:"cancelled_at,omitempty"`                       // approval timestamp
	CreatedBy           uint           `gorm:"index;not null" json:"created_by"`                          // authenticated creator
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`                                   // created at
	UpdatedAt           time.Time      `gorm:"index" json:"updated_at"`                                   // updated at
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`                                            // soft delete

	Lines   []OrderLine          `gorm:"foreignKey:OrderID" json:"lines,omitempty"`   // order lines
	History []OrderStatusHistory `gorm:"foreignKey:OrderID" json:"history,omitempty"` // status transitions
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}

// OrderLine is immutable once its order is created; unit and line prices are
// the authoritative frozen record.
type OrderLine struct {
	ID          uint            `gorm:"primarykey" json:"id"`                                    // primary key
	OrderID     uint            `gorm:"index;not null" json:"order_id"`                          // owning order
	MenuItemID  uint            `gorm:"index;not null" json:"menu_item_id"`                      // item reference
	VariantID   *uint           `gorm:"index" json:"variant_id,omitempty"`                       // variant reference
	ItemName    string          `gorm:"not null" json:"item_name"`                               // name snapshot
	VariantName string          `gorm:"type:varchar(100)" json:"variant_name,omitempty"`         // variant name snapshot
	UnitPrice   Money           `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // resolved per-unit price (base + addons)
	Quantity    int             `gorm:"not null" json:"quantity"`                                // line quantity
	LineTotal   Money           `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"` // unit_price * quantity
	Addons      AddonSelections `gorm:"type:json" json:"addons,omitempty"`                       // frozen addon breakdown
	Note        string          `gorm:"type:varchar(500)" json:"note,omitempty"`                 // free-text note
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`                                 // created at
}

// TableName sets the table name.
func (OrderLine) TableName() string {
	return "order_lines"
}

// OrderStatusHistory is the append-only trail of status transitions, written
// exclusively by the cancellation workflow.
type OrderStatusHistory struct {
	ID             uint      `gorm:"primarykey" json:"id"`                           // primary key
	OrderID        uint      `gorm:"index;not null" json:"order_id"`                 // owning order
	PreviousStatus string    `gorm:"type:varchar(32);not null" json:"previous_status"` // status before transition
	NewStatus      string    `gorm:"type:varchar(32);not null" json:"new_status"`    // status after transition
	ActorID        uint      `gorm:"not null" json:"actor_id"`                       // staff user driving the transition
	ActorRole      string    `gorm:"type:varchar(20)" json:"actor_role"`             // role at transition time
	Notes          string    `gorm:"type:varchar(500)" json:"notes,omitempty"`       // reason / decision notes
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                        // transition timestamp
}

// TableName sets the table name.
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
